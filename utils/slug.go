package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify lowercases and strips a name down to url-safe form.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// UniqueSlug appends -1, -2, ... until taken() reports the slug free.
func UniqueSlug(base string, taken func(slug string) bool) string {
	slug := base
	for counter := 1; taken(slug); counter++ {
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
	return slug
}
