package models

import "time"

// GoldPrice is one observation per brand per calendar date. Prices are in
// minor currency units (VND). Brand is referenced by name, matching the
// (brand, date) upsert key.
type GoldPrice struct {
	Id        int       `json:"id"`
	Brand     string    `json:"brand"`
	BuyPrice  int64     `json:"buy_price"`
	SellPrice int64     `json:"sell_price"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GoldPriceUpsert struct {
	Brand     string `json:"brand" validate:"required"`
	BuyPrice  int64  `json:"buyPrice" validate:"required,gt=0"`
	SellPrice int64  `json:"sellPrice" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"`
}

type GoldPriceFilters struct {
	Brand     string
	StartDate string
	EndDate   string
	Days      int
	Limit     int
}

// ChartPoint is one sample of a per-brand price series.
type ChartPoint struct {
	Date      string `json:"date"`
	BuyPrice  int64  `json:"buy_price"`
	SellPrice int64  `json:"sell_price"`
}
