package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value. Negative values fall
// back to the default so page/size parameters stay sane.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 0 {
		return defaultValue
	}

	return result
}

// MeanHalfUp returns the arithmetic mean of count integer ratings summing to
// sum, rounded half-up to two decimal places. Integer arithmetic keeps the
// rounding exact: floor((200*sum + count) / (2*count)) is the mean in
// hundredths. Returns 0 when count is 0.
func MeanHalfUp(sum, count int) float64 {
	if count == 0 {
		return 0
	}

	hundredths := (200*sum + count) / (2 * count)
	return float64(hundredths) / 100
}
