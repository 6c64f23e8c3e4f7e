// Package money holds the rounding rules applied to every amount the API returns.
package money

import "github.com/shopspring/decimal"

// Round2 rounds v to two decimal places, half away from zero.
// The value is taken at its shortest decimal representation, so 2.675 rounds to 2.68.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Percent returns part/whole*100 rounded to two places, or 0 when whole is zero.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromFloat(part).
		Div(decimal.NewFromFloat(whole)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}
