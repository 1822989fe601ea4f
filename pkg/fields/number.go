package fields

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// formatNumber renders a JSON number literal as canonical decimal text.
// Integer literals that fit 64 bits are kept as written; everything else
// goes through float64 and formatFloat.
func formatNumber(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			return s
		}
		if _, err := strconv.ParseUint(s, 10, 64); err == nil {
			return s
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return formatFloat(f)
}

// formatFloat prints the shortest representation that round-trips.
// Integral values keep a trailing ".0"; magnitudes of 1e16 and above or
// below 1e-5 switch to exponent form without a plus sign or padding.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-5) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		e, err := strconv.Atoi(exp)
		if err != nil {
			return s
		}
		return mantissa + "e" + strconv.Itoa(e)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
