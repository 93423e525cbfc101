package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type ChargeRequest struct {
	Amount decimal.Decimal
	Method domain.PaymentMethod
}

type ChargeResult struct {
	PaymentID string
	Approved  bool
	Reason    string
}

// PaymentGateway is the external payment processor. Charge must honor
// ctx cancellation so a real network integration can replace the
// simulated one behind the same contract.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// SimulatedGateway approves every charge after a fixed delay. The
// delay stands in for a real processor's latency; cancelling ctx
// aborts the wait.
type SimulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &ChargeResult{
		PaymentID: fmt.Sprintf("PAY%d", time.Now().UnixNano()),
		Approved:  true,
	}, nil
}
