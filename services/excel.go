package services

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// GoldPriceRow is one validated spreadsheet row, prices already converted
// from the thousand-VND shorthand to actual VND.
type GoldPriceRow struct {
	Brand     string
	BuyPrice  int64
	SellPrice int64
	Date      string
}

// ParseGoldPriceRows reads the first sheet of an xlsx upload. Row 1 is the
// header. Spreadsheet prices use thousand-VND shorthand and are multiplied
// by 1000. Error messages carry the 1-based spreadsheet row number.
func ParseGoldPriceRows(r io.Reader) ([]GoldPriceRow, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("đọc file Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("file Excel không có sheet nào")
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("đọc dữ liệu sheet: %w", err)
	}

	var rows []GoldPriceRow
	var errs []string
	for i := 1; i < len(raw); i++ {
		rowNum := i + 1

		// GetRows trims trailing empty cells, so short rows mean
		// missing data, not absent rows.
		cells := make([]string, 4)
		copy(cells, raw[i])
		for j := range cells {
			cells[j] = strings.TrimSpace(cells[j])
		}
		brand, buyRaw, sellRaw, date := cells[0], cells[1], cells[2], cells[3]

		if brand == "" && buyRaw == "" && sellRaw == "" && date == "" {
			continue
		}
		if brand == "" || buyRaw == "" || sellRaw == "" || date == "" {
			errs = append(errs, fmt.Sprintf("Dòng %d: Thiếu dữ liệu bắt buộc", rowNum))
			continue
		}

		buy, err1 := parseThousandPrice(buyRaw)
		sell, err2 := parseThousandPrice(sellRaw)
		if err1 != nil || err2 != nil || buy <= 0 || sell <= 0 {
			errs = append(errs, fmt.Sprintf("Dòng %d: Giá không hợp lệ", rowNum))
			continue
		}

		if _, err := time.Parse("2006-01-02", date); err != nil {
			errs = append(errs, fmt.Sprintf("Dòng %d: Ngày không hợp lệ (YYYY-MM-DD)", rowNum))
			continue
		}

		rows = append(rows, GoldPriceRow{Brand: brand, BuyPrice: buy, SellPrice: sell, Date: date})
	}
	return rows, errs, nil
}

func parseThousandPrice(s string) (int64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(v * 1000)), nil
}

var templateSamples = []GoldPriceRow{
	{Brand: "SJC", BuyPrice: 7000, SellPrice: 7200, Date: "2025-01-01"},
	{Brand: "PNJ", BuyPrice: 6950, SellPrice: 7150, Date: "2025-01-01"},
	{Brand: "DOJI", BuyPrice: 6980, SellPrice: 7180, Date: "2025-01-01"},
	{Brand: "Phú Quý", BuyPrice: 6970, SellPrice: 7170, Date: "2025-01-01"},
	{Brand: "Bảo Tín Minh Châu", BuyPrice: 6960, SellPrice: 7160, Date: "2025-01-01"},
}

// BuildGoldPriceTemplate produces the sample xlsx served by the template
// download endpoint. Sample prices are in the same thousand-VND shorthand
// the import expects.
func BuildGoldPriceTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Gold Prices Template"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []any{"Thương hiệu", "Giá mua (*1000 VNĐ)", "Giá bán (*1000 VNĐ)", "Ngày"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, s := range templateSamples {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{s.Brand, s.BuyPrice, s.SellPrice, s.Date}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 20); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "D", 15); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}
