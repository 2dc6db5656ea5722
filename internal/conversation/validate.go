package conversation

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// ValidEmail reports whether input looks like local@domain.tld.
func ValidEmail(input string) bool {
	return emailPattern.MatchString(input)
}

// ValidPhone reports whether input, after stripping internal whitespace, is
// an optional "+" followed by 10-15 digits.
func ValidPhone(input string) bool {
	stripped := strings.Join(strings.Fields(input), "")
	return phonePattern.MatchString(stripped)
}
