package database

import (
	"context"
	"fmt"
	"strings"

	"netson-backend/models"
)

const goldPriceCols = `id, brand, buy_price, sell_price, date::text, created_at, updated_at`

func scanGoldPrice(r rowScanner) (*models.GoldPrice, error) {
	var g models.GoldPrice
	err := r.Scan(&g.Id, &g.Brand, &g.BuyPrice, &g.SellPrice, &g.Date, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGoldPrices mirrors the public query shapes: with no brand filter it
// returns either the latest observation per brand or a recent-days window;
// with filters it returns matching rows newest first.
func ListGoldPrices(ctx context.Context, f models.GoldPriceFilters) ([]*models.GoldPrice, error) {
	if f.Brand == "" && f.StartDate == "" && f.EndDate == "" {
		if f.Days > 0 {
			return queryGoldPrices(ctx, `
				SELECT `+goldPriceCols+`
				FROM gold_prices
				WHERE date >= CURRENT_DATE - make_interval(days => $1)
				ORDER BY brand ASC, date DESC, created_at DESC`, f.Days)
		}
		return queryGoldPrices(ctx, `
			SELECT DISTINCT ON (brand) `+goldPriceCols+`
			FROM gold_prices
			ORDER BY brand ASC, date DESC, created_at DESC`)
	}

	where := []string{"1=1"}
	var args []any
	if f.Brand != "" {
		args = append(args, f.Brand)
		where = append(where, fmt.Sprintf("brand = $%d", len(args)))
	}
	if f.StartDate != "" {
		args = append(args, f.StartDate)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if f.EndDate != "" {
		args = append(args, f.EndDate)
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT %s FROM gold_prices
		WHERE %s
		ORDER BY date DESC, brand ASC
		LIMIT $%d`, goldPriceCols, strings.Join(where, " AND "), len(args))

	return queryGoldPrices(ctx, query, args...)
}

func queryGoldPrices(ctx context.Context, query string, args ...any) ([]*models.GoldPrice, error) {
	rows, err := Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := []*models.GoldPrice{}
	for rows.Next() {
		g, err := scanGoldPrice(rows)
		if err != nil {
			return nil, err
		}
		prices = append(prices, g)
	}
	return prices, rows.Err()
}

// UpsertGoldPrice inserts one observation per (brand, date) and updates the
// prices in place on conflict.
func UpsertGoldPrice(ctx context.Context, brand string, buyPrice, sellPrice int64, date string) (*models.GoldPrice, error) {
	row := Pool.QueryRow(ctx, `
		INSERT INTO gold_prices (brand, buy_price, sell_price, date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (brand, date)
		DO UPDATE SET buy_price = EXCLUDED.buy_price,
			sell_price = EXCLUDED.sell_price,
			updated_at = CURRENT_TIMESTAMP
		RETURNING `+goldPriceCols,
		brand, buyPrice, sellPrice, date)
	return scanGoldPrice(row)
}

// GoldPriceChart returns the per-brand series of the last N days, oldest
// sample first, for the dashboard chart.
func GoldPriceChart(ctx context.Context, days int) (map[string][]models.ChartPoint, error) {
	if days <= 0 {
		days = 7
	}
	rows, err := Pool.Query(ctx, `
		SELECT brand, date::text, buy_price, sell_price
		FROM gold_prices
		WHERE date >= CURRENT_DATE - make_interval(days => $1)
		ORDER BY brand ASC, date ASC`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := map[string][]models.ChartPoint{}
	for rows.Next() {
		var brand string
		var pt models.ChartPoint
		if err := rows.Scan(&brand, &pt.Date, &pt.BuyPrice, &pt.SellPrice); err != nil {
			return nil, err
		}
		series[brand] = append(series[brand], pt)
	}
	return series, rows.Err()
}
