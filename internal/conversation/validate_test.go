package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"a@b.co", true},
		{"student@example.com", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"", false},
		{"@b.co", false},
		{"a@.co", false},
		{"plainaddress", false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ValidEmail(tc.input), "input %q", tc.input)
	}
}

func TestValidPhone(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"+923001234567", true},
		{"03001234567", true},
		{"0300 123 4567", true}, // internal whitespace stripped
		{"12345", false},
		{"12345678901234567", false},
		{"+1234567890", true},
		{"++1234567890", false},
		{"phone123456789", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ValidPhone(tc.input), "input %q", tc.input)
	}
}
