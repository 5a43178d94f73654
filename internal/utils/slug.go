package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// nonSlugChars matches anything that isn't a lowercase letter, digit,
	// space or hyphen.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Slugify(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonSlugChars.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// DisambiguateSlug appends a numeric disambiguator (typically a unix
// timestamp) to a slug that collided with an existing one.
func DisambiguateSlug(slug string, n int64) string {
	return fmt.Sprintf("%s-%d", slug, n)
}
