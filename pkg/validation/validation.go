package validation

import (
	"strconv"
	"strings"
)

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidUnits validates a unit system name
func IsValidUnits(units string) bool {
	return units == "metric" || units == "imperial"
}

// ParseDays parses a day count, falling back to 1 when it is absent or not a positive integer
func ParseDays(raw string) int {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || days < 1 {
		return 1
	}
	return days
}
