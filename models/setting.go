package models

import "time"

// SiteSetting is an opaque key/value pair for UI configuration. Values are
// often JSON-encoded; the server never interprets them.
type SiteSetting struct {
	Id          int       `json:"id"`
	Key         string    `json:"key"`
	Value       *string   `json:"value"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SiteSettingUpsert struct {
	Value       *string `json:"value"`
	Description string  `json:"description"`
}
