/*
Copyright © 2025 changheonshin
*/
package namer

import (
	"regexp"
	"strings"
)

// DefaultBucket is the fallback token used when sanitization leaves nothing usable.
const DefaultBucket = "misc"

// MaxNameLength bounds the sanitized base name, not counting any extension.
const MaxNameLength = 50

var disallowedRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Sanitize converts arbitrary text (typically an AI response) into a
// filesystem-safe token: lowercase, only [a-z0-9_], single underscores
// between words, no underscores at the edges, at most MaxNameLength
// characters. An input that sanitizes to nothing yields DefaultBucket.
//
// The replacement order matters: disallowed characters become separators
// first, then repeated separators collapse, then edges are trimmed.
// Sanitizing an already-sanitized string returns it unchanged.
func Sanitize(text string) string {
	name := strings.ToLower(text)
	name = disallowedRuns.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
		name = strings.TrimRight(name, "_")
	}
	if name == "" {
		return DefaultBucket
	}
	return name
}
