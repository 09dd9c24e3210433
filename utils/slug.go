package utils

import (
	"math"
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugHyphens  = regexp.MustCompile(`-+`)
	htmlTagStrip = regexp.MustCompile(`<[^>]*>`)
)

// Slugify derives a URL-safe identifier from a title: lowercase, drop every
// rune outside [a-z0-9\s-], collapse whitespace runs to single hyphens,
// collapse hyphen runs, trim leading/trailing hyphens. Note that accented
// letters are dropped, not transliterated.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ReadingTimeMinutes estimates reading time for HTML content at 200 words
// per minute, rounded up.
func ReadingTimeMinutes(content string) int {
	plain := htmlTagStrip.ReplaceAllString(content, "")
	words := len(strings.Fields(plain))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / 200))
}
