package catalog

import "math"

// DiscountPercent computes the rounded percentage saved between the original
// and current price. It is clamped to 0 when the original price is zero or
// negative, or when there is no actual markdown, so malformed data can never
// surface NaN or a negative discount.
func DiscountPercent(original, current float64) int {
	if original <= 0 || current >= original {
		return 0
	}
	return int(math.Round((original - current) / original * 100))
}
