package common

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Clamp limits value to [min, max] and reports whether it had to be moved.
func Clamp[T number](min T, value T, max T) (T, bool) {
	switch {
	case value < min:
		return min, true
	case value > max:
		return max, true
	default:
		return value, false
	}
}

// ParseDecimal parses a non-negative, all-digit decimal token.
// Signs, spaces and empty strings are rejected.
func ParseDecimal(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// PadDecimal formats n zero-padded to at least width digits.
// Wider numbers are never truncated.
func PadDecimal(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// CompareNumeric orders two decimal tokens by value. Tokens that are not
// decimal sort after all numeric ones; ties fall back to a lexical compare
// so "1" and "01" still have a stable order.
func CompareNumeric(a, b string) int {
	na, okA := ParseDecimal(a)
	nb, okB := ParseDecimal(b)

	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case okA && okB && na != nb:
		if na < nb {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}
