package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify_TableTest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple title",
			input: "Hello",
			want:  "hello",
		},
		{
			name:  "spaces become hyphens",
			input: "My First Post",
			want:  "my-first-post",
		},
		{
			name:  "punctuation stripped",
			input: "Hello, World! 2026",
			want:  "hello-world-2026",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  padded title  ",
			want:  "padded-title",
		},
		{
			name:  "consecutive separators collapse",
			input: "a -- b",
			want:  "a-b",
		},
		{
			name:  "leading and trailing hyphens trimmed",
			input: "-edge case-",
			want:  "edge-case",
		},
		{
			name:  "only special characters",
			input: "!!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestDisambiguateSlug(t *testing.T) {
	assert.Equal(t, "hello-1700000000", DisambiguateSlug("hello", 1700000000))
}

func TestSlugify_IsURLSafe(t *testing.T) {
	slug := Slugify("Ünïcode & <symbols> #here")
	for _, r := range slug {
		safe := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.Truef(t, safe, "unexpected rune %q in slug %q", r, slug)
	}
}
