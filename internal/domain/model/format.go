package model

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// FormatPax renders a people count for a detail row, e.g. "7 people".
func FormatPax(n int) string {
	return fmt.Sprintf("%d people", n)
}

// FormatStatus upper-cases the first rune of the raw status and leaves the
// rest untouched. Not title case: "pending review" becomes "Pending review".
// Unrecognized statuses format the same way, and "" stays "".
func FormatStatus(s Status) string {
	raw := string(s)
	if raw == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(raw)
	return string(unicode.ToUpper(r)) + raw[size:]
}
