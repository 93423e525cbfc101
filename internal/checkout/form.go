package checkout

import (
	"fmt"
	"strings"

	"github.com/fjod/storefront/internal/domain"
)

// CardDetails are the card-specific payment fields.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
}

// Form carries everything the user filled in at checkout. Only the
// fields of the selected payment method are validated; the other
// method's fields are ignored entirely.
type Form struct {
	Shipping      domain.ShippingInfo
	PaymentMethod domain.PaymentMethod
	Card          CardDetails
	PayPalEmail   string
}

// Validate checks that all shipping fields and the selected payment
// method's fields are non-empty. It never mutates anything.
func (f *Form) Validate() error {
	shipping := []struct {
		name  string
		value string
	}{
		{"name", f.Shipping.Name},
		{"email", f.Shipping.Email},
		{"address", f.Shipping.Address},
		{"city", f.Shipping.City},
		{"zip code", f.Shipping.ZipCode},
	}
	for _, field := range shipping {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field.name)
		}
	}

	switch f.PaymentMethod {
	case domain.PaymentMethodCard:
		if strings.TrimSpace(f.Card.Number) == "" {
			return fmt.Errorf("%w: card number is required", ErrValidation)
		}
		if strings.TrimSpace(f.Card.Expiry) == "" {
			return fmt.Errorf("%w: card expiry is required", ErrValidation)
		}
		if strings.TrimSpace(f.Card.CVV) == "" {
			return fmt.Errorf("%w: card cvv is required", ErrValidation)
		}
	case domain.PaymentMethodPayPal:
		if strings.TrimSpace(f.PayPalEmail) == "" {
			return fmt.Errorf("%w: paypal email is required", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unsupported payment method %q", ErrValidation, f.PaymentMethod)
	}

	return nil
}
