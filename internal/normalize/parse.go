package normalize

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice converts a vendor price string to integer cents.
// "12.34" -> 1234, "$1,050.00" -> 105000.
//
// Returns ok=false for empty, unparseable, zero, or negative input;
// callers treat those as an absent field, never as zero.
func ParsePrice(s string) (int64, bool) {
	cleaned := stripFormatting(s)
	if cleaned == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	// Round to avoid floating point errors (e.g., 12.34 * 100 = 1233.999...)
	cents := int64(math.Round(f * 100))
	if cents <= 0 {
		return 0, false
	}
	return cents, true
}

// stripFormatting drops currency symbols, thousands separators, and
// whitespace, keeping only the characters a float parser understands.
func stripFormatting(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
