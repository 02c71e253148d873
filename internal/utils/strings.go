package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// IsDigits reports whether s is a non-empty string of ASCII digits only.
// Signs, spaces and decimal points are rejected.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SafeFilenamePart strips characters that do not belong in a download filename.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
