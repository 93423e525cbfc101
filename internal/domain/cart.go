package domain

import "github.com/shopspring/decimal"

// LineItem is one product entry in a cart with its quantity.
// Quantity is always >= 1; an item whose quantity would drop below 1
// is removed from the cart instead.
type LineItem struct {
	ProductID   int64           `json:"product_id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Thumbnail   string          `json:"thumbnail"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// LineTotal is unit price times quantity, exact (no rounding).
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CloneItems returns a deep copy of items. Orders keep such a copy so
// later cart mutations cannot alter history.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
