package models

import "time"

type Article struct {
	Id                 int        `json:"id"`
	Title              string     `json:"title"`
	Content            string     `json:"content,omitempty"`
	Excerpt            string     `json:"excerpt"`
	Slug               string     `json:"slug"`
	MetaTitle          string     `json:"meta_title"`
	MetaDescription    string     `json:"meta_description"`
	Keywords           string     `json:"keywords"`
	OgImage            *string    `json:"og_image"`
	Author             string     `json:"author"`
	IsPublished        bool       `json:"is_published"`
	PublishedAt        *time.Time `json:"published_at"`
	Featured           bool       `json:"featured"`
	ViewCount          int        `json:"view_count"`
	ReadingTimeMinutes int        `json:"reading_time_minutes"`
	Category           string     `json:"category"`
	Tags               []string   `json:"tags"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type ArticleCreate struct {
	Title           string     `json:"title" validate:"required"`
	Content         string     `json:"content" validate:"required"`
	Excerpt         string     `json:"excerpt"`
	Slug            string     `json:"slug"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	Keywords        string     `json:"keywords"`
	OgImage         *string    `json:"og_image"`
	Author          string     `json:"author"`
	IsPublished     *bool      `json:"is_published"` // default true
	PublishedAt     *time.Time `json:"published_at"`
	Featured        bool       `json:"featured"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
}

type ArticlePatch struct {
	Title           Optional[string]    `json:"title"`
	Content         Optional[string]    `json:"content"`
	Excerpt         Optional[string]    `json:"excerpt"`
	Slug            Optional[string]    `json:"slug"`
	MetaTitle       Optional[string]    `json:"meta_title"`
	MetaDescription Optional[string]    `json:"meta_description"`
	Keywords        Optional[string]    `json:"keywords"`
	OgImage         Optional[string]    `json:"og_image"`
	Author          Optional[string]    `json:"author"`
	IsPublished     Optional[bool]      `json:"is_published"`
	PublishedAt     Optional[time.Time] `json:"published_at"`
	Featured        Optional[bool]      `json:"featured"`
	Category        Optional[string]    `json:"category"`
	Tags            Optional[[]string]  `json:"tags"`
}

type ArticleFilters struct {
	Status   string // all | published | draft (admin listing)
	Search   string
	Featured bool
	Page     int
	Limit    int
}
