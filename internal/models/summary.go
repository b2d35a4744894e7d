package models

import (
	"errors"
	"fmt"
	"math"
)

// RoundingTolerance is the largest difference accepted between the displayed
// total and subtotal plus tax
const RoundingTolerance Money = 1

// Domain errors
var (
	ErrInvalidTaxRate = errors.New("tax rate must be in [0, 1)")
	ErrNegativePrice  = errors.New("item price cannot be negative")
)

// OrderSummary is the price breakdown shown on the checkout overview
type OrderSummary struct {
	Subtotal Money
	Tax      Money
	Total    Money
}

// NewOrderSummary computes the breakdown the shop is expected to display for
// the given item prices and tax rate
func NewOrderSummary(prices []Money, taxRate float64) (OrderSummary, error) {
	if taxRate < 0 || taxRate >= 1 {
		return OrderSummary{}, ErrInvalidTaxRate
	}

	var subtotal Money
	for _, p := range prices {
		if p < 0 {
			return OrderSummary{}, fmt.Errorf("%w: %s", ErrNegativePrice, p)
		}
		subtotal += p
	}

	tax := Money(math.Round(float64(subtotal) * taxRate))

	return OrderSummary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}, nil
}

// Balanced reports whether Total equals Subtotal plus Tax within RoundingTolerance
func (s OrderSummary) Balanced() bool {
	return s.Total.Within(s.Subtotal+s.Tax, RoundingTolerance)
}

// String renders the breakdown for assertion messages
func (s OrderSummary) String() string {
	return fmt.Sprintf("subtotal %s + tax %s = total %s", s.Subtotal, s.Tax, s.Total)
}
