package models

import "time"

// Image describes an object stored on the external CDN. Rows are created
// only as a side effect of a successful upload; the featured flag is the
// only mutable field.
type Image struct {
	Id         int       `json:"id"`
	PublicId   string    `json:"public_id"`
	URL        string    `json:"url"`
	SecureURL  string    `json:"secure_url"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Format     string    `json:"format"`
	Bytes      int64     `json:"bytes"`
	Folder     string    `json:"folder"`
	AltText    string    `json:"alt_text"`
	Title      string    `json:"title"`
	ProductId  *int      `json:"product_id"`
	IsFeatured bool      `json:"is_featured"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ImageCreate struct {
	PublicId   string
	URL        string
	SecureURL  string
	Width      int
	Height     int
	Format     string
	Bytes      int64
	Folder     string
	AltText    string
	Title      string
	ProductId  *int
	IsFeatured bool
}

type ImageFilters struct {
	ProductId *int
	Featured  bool
	Limit     int
	Offset    int
}
