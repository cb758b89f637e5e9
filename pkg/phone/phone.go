package phone

import "strings"

// Normalize strips every non-digit rune from a contact number.
// "050-123-4567" and "0501234567" normalize to the same value.
// No length or country-code validation is performed on purpose:
// customers type numbers in whatever format their keypad suggests.
func Normalize(contact string) string {
	var b strings.Builder
	b.Grow(len(contact))
	for _, r := range contact {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
