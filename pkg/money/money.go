// Package money renders monetary amounts for display. Every amount shown
// to the user or printed on an invoice goes through Format so raw
// floating-point artifacts never reach the screen.
package money

import "github.com/shopspring/decimal"

// Symbol is the fixed currency symbol for all displayed amounts.
const Symbol = "₹"

// Format renders an amount with the currency symbol and exactly two
// fractional digits, rounding half away from zero.
func Format(amount float64) string {
	return Symbol + decimal.NewFromFloat(amount).StringFixed(2)
}
