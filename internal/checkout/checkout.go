// Package checkout composes the cart, the monetary calculator and the
// order ledger into the submission flow, and drives its state machine.
package checkout

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/ledger"
	"github.com/fjod/storefront/internal/pricing"
	"github.com/sony/gobreaker/v2"
)

// Navigator is the routing primitive invoked after a completed
// checkout. Consumers define this interface, not the UI layer.
type Navigator interface {
	GoTo(route string)
}

// Notifier receives user-facing confirmation of a successful
// submission.
type Notifier interface {
	Notify(kind, message string)
}

// Checkout is one session's submission machine. The Submitting status
// is the sole guard against duplicate orders from that session.
type Checkout struct {
	mu     sync.Mutex
	status Status

	cart     *cart.Store
	ledger   *ledger.Ledger
	breaker  *gobreaker.CircuitBreaker[*ChargeResult]
	gateway  PaymentGateway
	nav      Navigator
	notifier Notifier
}

func New(cartStore *cart.Store, l *ledger.Ledger, gateway PaymentGateway, nav Navigator, notifier Notifier) *Checkout {
	breaker := gobreaker.NewCircuitBreaker[*ChargeResult](gobreaker.Settings{
		Name: "payment-gateway",
	})
	return &Checkout{
		status:   StatusIdle,
		cart:     cartStore,
		ledger:   l,
		breaker:  breaker,
		gateway:  gateway,
		nav:      nav,
		notifier: notifier,
	}
}

func (c *Checkout) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Submit runs the whole checkout: validate, charge, snapshot, append,
// clear. On any failure the machine falls back to Idle with the cart
// intact so the user can retry; the cart is cleared only after the
// order is durably appended.
func (c *Checkout) Submit(ctx context.Context, form Form) (*domain.Order, error) {
	if err := c.begin(form); err != nil {
		return nil, err
	}

	// Deep snapshot first: the order must be immune to later cart
	// mutations.
	items := c.cart.Items()
	breakdown := pricing.Compute(items)

	result, err := c.breaker.Execute(func() (*ChargeResult, error) {
		return c.gateway.Charge(ctx, ChargeRequest{
			Amount: breakdown.Total,
			Method: form.PaymentMethod,
		})
	})
	if err != nil {
		c.revert()
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	if !result.Approved {
		c.revert()
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, result.Reason)
	}

	now := time.Now()
	order := domain.Order{
		ID:            domain.NewOrderID(now),
		CreatedAt:     now,
		Items:         items,
		Subtotal:      breakdown.Subtotal,
		Tax:           breakdown.Tax,
		Shipping:      breakdown.Shipping,
		Total:         breakdown.Total,
		ShippingInfo:  form.Shipping,
		PaymentMethod: form.PaymentMethod,
	}

	if err := c.ledger.Append(ctx, order); err != nil {
		c.revert()
		return nil, fmt.Errorf("persist order failed: %w", err)
	}

	// Only now is it safe to drop the cart.
	c.cart.Clear()

	if err := c.transition(StatusCompleted); err != nil {
		// Submitting -> Completed cannot fail once begin succeeded.
		log.Printf("checkout transition error: %v", err)
	}

	c.notifier.Notify("success", "Order placed successfully! Thank you for your purchase.")
	c.nav.GoTo("/")

	return &order, nil
}

// begin moves Idle -> Submitting after the entry checks. Nothing is
// mutated when a check fails.
func (c *Checkout) begin(form Form) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusSubmitting {
		return ErrSubmitInProgress
	}
	if c.cart.IsEmpty() {
		return ErrEmptyCart
	}
	if err := form.Validate(); err != nil {
		return err
	}

	// A session that completed an order earlier starts over.
	if c.status == StatusCompleted {
		c.status = StatusIdle
	}
	if !CanTransitionTo(c.status, StatusSubmitting) {
		return ErrIllegalTransition
	}
	c.status = StatusSubmitting
	return nil
}

func (c *Checkout) transition(next Status) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !CanTransitionTo(c.status, next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, c.status, next)
	}
	c.status = next
	return nil
}

// revert returns to Idle, retaining cart and form for a retry.
func (c *Checkout) revert() {
	if err := c.transition(StatusIdle); err != nil {
		log.Printf("checkout revert error: %v", err)
	}
}
