// Package validation holds the pure field-level rules applied by the
// controllers before any persistence call is issued.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// One "@", at least one "." in the domain part, no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MissingFields returns the names, in the given order, of fields whose value
// is empty. An empty result means all required fields are present.
func MissingFields(names []string, fields map[string]string) []string {
	var missing []string
	for _, name := range names {
		if fields[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Email reports whether s has a plausible local@domain.tld shape.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Enum reports whether value belongs to the allowed set, case-insensitively.
// An empty value is always valid; defaults apply downstream.
func Enum(value string, allowed []string) bool {
	if value == "" {
		return true
	}
	lowered := strings.ToLower(value)
	for _, a := range allowed {
		if lowered == a {
			return true
		}
	}
	return false
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05.000Z07:00",
	"2 Jan 2006",
}

// Date parses s as a calendar date/time. An empty value is valid and yields
// the zero time; a non-empty value must match one of the accepted layouts.
func Date(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
