package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex   = regexp.MustCompile(`^\d{10}$`)
	vehicleRegex = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{1,2}\d{4}$`)
)

// IsValidEmail checks for "local@domain.tld" with no whitespace and a single "@".
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone accepts exactly 10 ASCII digits.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsValidVehicleNumber checks Indian registration plates such as "MH12AB1234".
// Matching is case-insensitive.
func IsValidVehicleNumber(s string) bool {
	return vehicleRegex.MatchString(strings.ToUpper(s))
}

// IsValidAmount parses raw as a base-10 integer and checks it against min.
func IsValidAmount(raw string, min int64) bool {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return false
	}
	return n >= min && n > 0
}
