package utils

import "strconv"

// FormatFloat renders a float the way the typed config snippet expects:
// no exponent, no trailing zeros ("1", "0.25", "13.78").
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
