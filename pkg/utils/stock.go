package utils

import "math"

// ClampStock normalizes an operator-supplied stock value to a non-negative
// integer. Fractional input is floored.
func ClampStock(stock float64) int64 {
	if stock <= 0 || math.IsNaN(stock) {
		return 0
	}
	return int64(math.Floor(stock))
}

// DeriveInStock resolves the purchasable flag for a variant. Zero stock
// always wins: the flag is forced false regardless of any override. With
// stock available the explicit override applies when given, otherwise true.
func DeriveInStock(stock int64, override *bool) bool {
	if stock == 0 {
		return false
	}
	if override != nil {
		return *override
	}
	return true
}
