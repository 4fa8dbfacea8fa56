package eval

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way a browser prints a number by default:
// shortest round-trip digits, no trailing ".0" on integral values, and
// exponent form outside [1e-6, 1e21).
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return wordNaN
	case math.IsInf(v, 1):
		return wordInfinity
	case math.IsInf(v, -1):
		return "-" + wordInfinity
	case v == 0:
		// Covers negative zero
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exponent, _ := strings.Cut(s, "e")
		sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
