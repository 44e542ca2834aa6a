package utils

import "strconv"

// FormatQuantity renders an ingredient amount without trailing zeros:
// 500 -> "500", 0.5 -> "0.5", 1.25 -> "1.25".
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
