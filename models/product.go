package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dimensions is stored as a JSONB blob on the product row.
type Dimensions struct {
	Height *float64 `json:"height,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
}

// Product is hard-deleted; its images are removed by the FK cascade.
type Product struct {
	Id                     int              `json:"id"`
	Title                  string           `json:"title"`
	Description            string           `json:"description"`
	CategoryId             *int             `json:"category_id"`
	Price                  *decimal.Decimal `json:"price"` // nil = "contact for price"
	Images                 []string         `json:"images"`
	FeaturedImage          *string          `json:"featured_image"`
	MetaDescription        string           `json:"meta_description"`
	Slug                   string           `json:"slug"`
	IsFeatured             bool             `json:"is_featured"`
	IsActive               bool             `json:"is_active"`
	StockQuantity          int              `json:"stock_quantity"`
	WeightGrams            *decimal.Decimal `json:"weight_grams"`
	DimensionsCm           *Dimensions      `json:"dimensions_cm"`
	Materials              string           `json:"materials"`
	CustomizationAvailable bool             `json:"customization_available"`
	SortOrder              int              `json:"sort_order"`
	ViewCount              int              `json:"view_count"`
	Likes                  int              `json:"likes"`
	Rating                 decimal.Decimal  `json:"rating"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
	Category               *Category        `json:"category,omitempty"`
}

type ProductCreate struct {
	Title                  string           `json:"title" validate:"required"`
	Description            string           `json:"description"`
	CategoryId             *int             `json:"category_id"`
	Price                  *decimal.Decimal `json:"price"`
	MetaDescription        string           `json:"meta_description"`
	IsFeatured             bool             `json:"is_featured"`
	IsActive               *bool            `json:"is_active"` // default true unless explicitly false
	StockQuantity          int              `json:"stock_quantity" validate:"gte=0"`
	WeightGrams            *decimal.Decimal `json:"weight_grams"`
	DimensionsCm           *Dimensions      `json:"dimensions_cm"`
	Materials              string           `json:"materials"`
	CustomizationAvailable *bool            `json:"customization_available"` // default true unless explicitly false
}

// ProductPatch carries only the fields the caller supplied.
type ProductPatch struct {
	Title                  Optional[string]          `json:"title"`
	Description            Optional[string]          `json:"description"`
	CategoryId             Optional[int]             `json:"category_id"`
	Price                  Optional[decimal.Decimal] `json:"price"`
	MetaDescription        Optional[string]          `json:"meta_description"`
	IsFeatured             Optional[bool]            `json:"is_featured"`
	IsActive               Optional[bool]            `json:"is_active"`
	StockQuantity          Optional[int]             `json:"stock_quantity"`
	WeightGrams            Optional[decimal.Decimal] `json:"weight_grams"`
	DimensionsCm           Optional[Dimensions]      `json:"dimensions_cm"`
	Materials              Optional[string]          `json:"materials"`
	CustomizationAvailable Optional[bool]            `json:"customization_available"`
}

type ProductFilters struct {
	CategorySlug string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	Featured     bool
	Search       string
	SortBy       string
	Page         int
	Limit        int
}
