package utils

import (
	"strconv"
	"strings"
)

func ParseIntDefault(s string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v >= 0 {
		return v
	}
	return def
}

// ParsePagination reads page/limit query values with sane bounds.
func ParsePagination(page, limit string, defLimit, maxLimit int) (int, int) {
	p := ParseIntDefault(page, 1)
	if p < 1 {
		p = 1
	}
	l := ParseIntDefault(limit, defLimit)
	if l < 1 {
		l = defLimit
	}
	if l > maxLimit {
		l = maxLimit
	}
	return p, l
}
