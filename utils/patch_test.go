package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	testCases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults on empty", page: "", limit: "", wantPage: 1, wantLimit: 12},
		{name: "explicit values", page: "3", limit: "24", wantPage: 3, wantLimit: 24},
		{name: "limit capped at max", page: "1", limit: "9999", wantPage: 1, wantLimit: 100},
		{name: "garbage falls back", page: "abc", limit: "xyz", wantPage: 1, wantLimit: 12},
		{name: "zero page clamps to one", page: "0", limit: "10", wantPage: 1, wantLimit: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := ParsePagination(tc.page, tc.limit, 12, 100)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestNormalizeDTO(t *testing.T) {
	type dto struct {
		Name        string
		Description string
		Count       int
	}
	d := dto{Name: "  SJC  ", Description: "\tgold\n", Count: 5}
	NormalizeDTO(&d)
	assert.Equal(t, "SJC", d.Name)
	assert.Equal(t, "gold", d.Description)
	assert.Equal(t, 5, d.Count)
}
