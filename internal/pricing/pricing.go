// Package pricing computes the monetary breakdown of a cart. All
// functions are pure; values stay exact decimals and are rounded to
// two places only at presentation boundaries.
package pricing

import (
	"github.com/fjod/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// TaxRate is applied to the subtotal.
	TaxRate = decimal.RequireFromString("0.08")

	// FlatShipping is charged unless the subtotal qualifies for free
	// shipping.
	FlatShipping = decimal.RequireFromString("9.99")

	// FreeShippingThreshold is exclusive: a subtotal of exactly 50.00
	// still pays shipping.
	FreeShippingThreshold = decimal.NewFromInt(50)
)

// Breakdown holds the derived monetary values for a cart. It is never
// stored on the cart itself; callers recompute it after every mutation.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Subtotal sums unit price times quantity over all items. An empty
// cart yields zero.
func Subtotal(items []domain.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// Tax is subtotal times TaxRate, unrounded.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

// Shipping is zero strictly above the free-shipping threshold,
// otherwise the flat rate.
func Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShipping
}

// Total is the straight sum of the three components.
func Total(subtotal, tax, shipping decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax).Add(shipping)
}

// Compute derives the full breakdown for items.
func Compute(items []domain.LineItem) Breakdown {
	sub := Subtotal(items)
	tax := Tax(sub)
	ship := Shipping(sub)
	return Breakdown{
		Subtotal: sub,
		Tax:      tax,
		Shipping: ship,
		Total:    Total(sub, tax, ship),
	}
}
