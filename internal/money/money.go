// Package money provides fixed-point formatting for monetary figures.
// Curve math runs on float64 (power laws need math.Pow), but every amount
// that reaches a user-facing string or wire field goes through decimal so
// rounding is explicit and consistent.
package money

import (
	"github.com/shopspring/decimal"
)

// Amount formats a monetary figure with two decimal places.
func Amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Percent formats a percentage with one decimal place.
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}

// Whole formats a monetary figure rounded to a whole unit.
func Whole(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(0)
}

// Rate formats a model rate coefficient with four decimal places.
func Rate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}

// Value is an amount/currency pair for API payloads. The amount is a
// fixed-point string: never a float on the wire.
type Value struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// NewValue builds a wire value from a float amount and currency label.
func NewValue(v float64, currency string) *Value {
	return &Value{Amount: Amount(v), Currency: currency}
}
