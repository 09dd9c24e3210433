package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "Gold Trophy", expected: "gold-trophy"},
		{name: "mixed case and punctuation", input: "Hello, World!", expected: "hello-world"},
		{name: "accented letters are stripped", input: "Cúp Vàng Test", expected: "cp-vng-test"},
		{name: "whitespace runs collapse", input: "  a   b  ", expected: "a-b"},
		{name: "existing hyphens survive", input: "pre-made slug", expected: "pre-made-slug"},
		{name: "consecutive hyphens collapse", input: "a -- b", expected: "a-b"},
		{name: "leading and trailing hyphens trimmed", input: "- trimmed -", expected: "trimmed"},
		{name: "digits kept", input: "Trophy 2025", expected: "trophy-2025"},
		{name: "only stripped characters", input: "!!!", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestReadingTimeMinutes(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "empty content", content: "", expected: 0},
		{name: "short text rounds up", content: "just a few words", expected: 1},
		{name: "exactly 200 words", content: strings.Repeat("word ", 200), expected: 1},
		{name: "201 words rounds up", content: strings.Repeat("word ", 201), expected: 2},
		{name: "html tags excluded", content: "<p>" + strings.Repeat("word ", 250) + "</p>", expected: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ReadingTimeMinutes(tc.content))
		})
	}
}
