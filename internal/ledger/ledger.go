// Package ledger persists the append-only sequence of completed
// orders as a single JSON blob under one key, read-whole/append/
// write-whole under a single-writer assumption.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/kv"
	"golang.org/x/sync/singleflight"
)

const ordersKey = "orders"

// Ledger is the durable, ordered, append-only collection of completed
// orders. Insertion order is chronological order; nothing is ever
// removed or reordered.
type Ledger struct {
	mu    sync.Mutex
	store kv.Store
	sfg   singleflight.Group // collapses concurrent reads of the blob
}

func New(store kv.Store) *Ledger {
	return &Ledger{store: store}
}

// Append adds order to the end of the persisted sequence. The
// read-modify-write runs under the ledger lock and the backend writes
// the whole value atomically, so no partial state is observable by a
// subsequent read. On failure the stored sequence is unchanged.
func (l *Ledger) Append(ctx context.Context, order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load(ctx)
	if err != nil {
		return err
	}

	orders = append(orders, order)
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders failed: %w", err)
	}

	if err := l.store.Set(ctx, ordersKey, string(data)); err != nil {
		return fmt.Errorf("persist orders failed: %w", err)
	}
	return nil
}

// ListAll returns all orders in insertion order, oldest first. An
// absent key yields an empty sequence.
func (l *Ledger) ListAll(ctx context.Context) ([]domain.Order, error) {
	v, err, _ := l.sfg.Do(ordersKey, func() (interface{}, error) {
		return l.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Order), nil
}

// Recent returns the first n orders of ListAll plus the count of the
// remainder, for summarized views.
func (l *Ledger) Recent(ctx context.Context, n int) ([]domain.Order, int, error) {
	all, err := l.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n], len(all) - n, nil
}

// load reads and decodes the blob. A missing key or an unparseable
// value is treated as an empty ledger; only transport failures
// propagate.
func (l *Ledger) load(ctx context.Context) ([]domain.Order, error) {
	raw, err := l.store.Get(ctx, ordersKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read orders failed: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		log.Printf("stored orders not parseable, treating as empty: %v", err)
		return nil, nil
	}
	return orders, nil
}
