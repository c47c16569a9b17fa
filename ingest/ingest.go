// Package ingest loads source documents and normalizes them for the
// substring engine: whitespace runs collapse to single ASCII spaces and the
// result carries no leading or trailing space, so two documents compare on
// their token content rather than their original layout.
package ingest

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Normalize collapses every run of whitespace in s to a single space and
// trims the ends. Empty and all-whitespace inputs normalize to "".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ReadFile loads the document at path and returns its normalized contents.
// A missing or unreadable file is a terminal error for the invocation.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return Normalize(string(data)), nil
}
