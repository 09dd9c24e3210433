package services

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sheetWithRows(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []any{"Thương hiệu", "Giá mua (*1000 VNĐ)", "Giá bán (*1000 VNĐ)", "Ngày"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseGoldPriceRows(t *testing.T) {
	t.Run("valid rows convert the thousand shorthand", func(t *testing.T) {
		buf := sheetWithRows(t, [][]any{
			{"SJC", 7000, 7200, "2025-01-01"},
			{"PNJ", 6950.5, 7150, "2025-01-02"},
		})

		rows, errs, err := ParseGoldPriceRows(buf)
		require.NoError(t, err)
		assert.Empty(t, errs)
		require.Len(t, rows, 2)

		assert.Equal(t, "SJC", rows[0].Brand)
		assert.Equal(t, int64(7000000), rows[0].BuyPrice)
		assert.Equal(t, int64(7200000), rows[0].SellPrice)
		assert.Equal(t, "2025-01-01", rows[0].Date)

		assert.Equal(t, int64(6950500), rows[1].BuyPrice)
	})

	t.Run("row missing a column is reported with its sheet row number", func(t *testing.T) {
		buf := sheetWithRows(t, [][]any{
			{"SJC", 7000, 7200, "2025-01-01"},
			{"PNJ", 6950, 7150, "2025-01-01"},
			{"DOJI", 6980, 7180}, // no date
			{"Phú Quý", 6970, 7170, "2025-01-01"},
		})

		rows, errs, err := ParseGoldPriceRows(buf)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		require.Len(t, errs, 1)
		assert.Equal(t, "Dòng 4: Thiếu dữ liệu bắt buộc", errs[0])
	})

	t.Run("bad price and bad date", func(t *testing.T) {
		buf := sheetWithRows(t, [][]any{
			{"SJC", "abc", 7200, "2025-01-01"},
			{"SJC", -5, 7200, "2025-01-01"},
			{"SJC", 7000, 7200, "01/02/2025"},
		})

		rows, errs, err := ParseGoldPriceRows(buf)
		require.NoError(t, err)
		assert.Empty(t, rows)
		require.Len(t, errs, 3)
		assert.Equal(t, "Dòng 2: Giá không hợp lệ", errs[0])
		assert.Equal(t, "Dòng 3: Giá không hợp lệ", errs[1])
		assert.Equal(t, "Dòng 4: Ngày không hợp lệ (YYYY-MM-DD)", errs[2])
	})

	t.Run("blank rows are skipped silently", func(t *testing.T) {
		buf := sheetWithRows(t, [][]any{
			{"SJC", 7000, 7200, "2025-01-01"},
			{"", "", "", ""},
			{"PNJ", 6950, 7150, "2025-01-01"},
		})

		rows, errs, err := ParseGoldPriceRows(buf)
		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Len(t, rows, 2)
	})

	t.Run("not an xlsx file", func(t *testing.T) {
		_, _, err := ParseGoldPriceRows(bytes.NewReader([]byte("plain text")))
		assert.Error(t, err)
	})
}

func TestGoldPriceTemplateRoundTrip(t *testing.T) {
	buf, err := BuildGoldPriceTemplate()
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	rows, errs, err := ParseGoldPriceRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, len(templateSamples))

	assert.Equal(t, "SJC", rows[0].Brand)
	assert.Equal(t, int64(7000000), rows[0].BuyPrice)
	assert.Equal(t, "Bảo Tín Minh Châu", rows[4].Brand)
	assert.Equal(t, int64(7160000), rows[4].SellPrice)
}
