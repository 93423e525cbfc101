package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of supported payment variants.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodPayPal
}

// String representation (for logging)
func (m PaymentMethod) String() string {
	return string(m)
}

// ShippingInfo holds the free-text shipping details captured at
// submission time. All fields are required non-empty.
type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

// Order is a completed checkout, immutable once created. Items and the
// monetary fields are snapshots taken at submission time, not
// references into the live cart.
type Order struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
	ShippingInfo  ShippingInfo    `json:"shipping_info"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

// NewOrderID derives an order id from the creation time. Nanosecond
// resolution keeps ids distinguishable within a single session.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD%d", now.UnixNano())
}
