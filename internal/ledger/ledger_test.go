package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every operation after the set threshold of calls.
type failingStore struct {
	mu    sync.Mutex
	inner kv.Store
	err   error
}

func (f *failingStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.inner.Get(ctx, key)
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	return f.inner.Set(ctx, key, value)
}

func order(id string, total string) domain.Order {
	t := decimal.RequireFromString(total)
	return domain.Order{
		ID:            id,
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
		Items:         []domain.LineItem{{ProductID: 1, Title: "beans", UnitPrice: t, Quantity: 1}},
		Subtotal:      t,
		Total:         t,
		PaymentMethod: domain.PaymentMethodCard,
	}
}

func TestListAll_AbsentKeyIsEmpty(t *testing.T) {
	l := New(kv.NewMemory())
	orders, err := l.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestAppend_ReadAfterWrite(t *testing.T) {
	ctx := context.Background()
	l := New(kv.NewMemory())

	first := order("ORD1", "10.00")
	second := order("ORD2", "20.00")

	require.NoError(t, l.Append(ctx, first))
	require.NoError(t, l.Append(ctx, second))

	all, err := l.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ORD1", all[0].ID, "prior entries keep their order")
	assert.Equal(t, "ORD2", all[1].ID, "appended order is the last element")
}

func TestAppend_PreservesOrderFields(t *testing.T) {
	ctx := context.Background()
	l := New(kv.NewMemory())

	o := order("ORD1", "36.99")
	o.ShippingInfo = domain.ShippingInfo{Name: "A", Email: "a@b.c", Address: "1 St", City: "X", ZipCode: "12345"}
	require.NoError(t, l.Append(ctx, o))

	all, err := l.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.ShippingInfo, got.ShippingInfo)
	assert.Equal(t, domain.PaymentMethodCard, got.PaymentMethod)
	assert.True(t, got.Total.Equal(o.Total))
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(1), got.Items[0].ProductID)
}

func TestListAll_CorruptBlobTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, "orders", "{not json"))

	l := New(store)
	orders, err := l.ListAll(ctx)
	require.NoError(t, err, "a corrupt blob must never be fatal")
	assert.Empty(t, orders)

	// the ledger stays usable afterwards
	require.NoError(t, l.Append(ctx, order("ORD1", "10.00")))
	orders, err = l.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestAppend_TransportFailurePropagates(t *testing.T) {
	ctx := context.Background()
	fs := &failingStore{inner: kv.NewMemory(), err: errors.New("backend down")}

	l := New(fs)
	err := l.Append(ctx, order("ORD1", "10.00"))
	assert.Error(t, err)

	// recovery: once the backend is back, nothing was half-written
	fs.mu.Lock()
	fs.err = nil
	fs.mu.Unlock()
	orders, err := l.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRecent(t *testing.T) {
	ctx := context.Background()
	l := New(kv.NewMemory())
	for _, id := range []string{"ORD1", "ORD2", "ORD3", "ORD4"} {
		require.NoError(t, l.Append(ctx, order(id, "10.00")))
	}

	recent, remaining, err := l.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "ORD1", recent[0].ID)
	assert.Equal(t, "ORD2", recent[1].ID)
	assert.Equal(t, 2, remaining)

	recent, remaining, err = l.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 4)
	assert.Equal(t, 0, remaining)
}

func TestAppend_ConcurrentAppendsAllSurvive(t *testing.T) {
	ctx := context.Background()
	l := New(kv.NewMemory())

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_ = l.Append(ctx, order(domain.NewOrderID(time.Now()), "10.00"))
		}(i)
	}
	wg.Wait()

	all, err := l.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n, "read-modify-write must be serialized")
}
