package kv

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetUnknownKey(t *testing.T) {
	s := NewMemory()

	_, err := s.Get(context.Background(), "orders")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SetThenGet(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "orders", `[]`))
	v, err := s.Get(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	// Set replaces the whole value.
	require.NoError(t, s.Set(ctx, "orders", `[{"id":"ORD1"}]`))
	v, err = s.Get(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"ORD1"}]`, v)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%4)
			require.NoError(t, s.Set(ctx, key, "v"))
			_, _ = s.Get(ctx, key)
		}(i)
	}
	wg.Wait()
}
