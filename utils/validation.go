package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// IsDigits reports whether s is non-empty and contains only ASCII digits.
func IsDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// NormalizeCardNumber strips the spaces and dashes a user typically types
// into a card field. It never touches other characters; a number that still
// contains non-digits after normalization will fail classification.
func NormalizeCardNumber(number string) string {
	out := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		if number[i] == ' ' || number[i] == '-' {
			continue
		}
		out = append(out, number[i])
	}
	return string(out)
}

// ValidateJSON validates that data is well-formed JSON.
func ValidateJSON(data []byte) error {
	var js json.RawMessage
	return json.Unmarshal(data, &js)
}

// ValidateExpiration checks that a card expiration is a real month in a
// plausible year and not in the past, judged against now.
func ValidateExpiration(month, year int, now time.Time) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("expiration month must be 1-12, got %d", month)
	}
	if year <= 0 {
		return fmt.Errorf("expiration year must be positive, got %d", year)
	}
	if year < now.Year() || (year == now.Year() && time.Month(month) < now.Month()) {
		return fmt.Errorf("card expired %04d-%02d", year, month)
	}
	return nil
}
