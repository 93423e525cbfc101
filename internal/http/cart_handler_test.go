package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCart_EmptyByDefault(t *testing.T) {
	env := newTestEnv(t)
	rec := env.newClient(t).do(http.MethodGet, "/cart", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var view CartViewDTO
	decodeBody(t, rec, &view)
	assert.True(t, view.IsEmpty)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Breakdown.Total)
}

func TestAddItem_ReturnsRecomputedBreakdown(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	rec := c.do(http.MethodPost, "/cart/items", addItemBody(1, "12.50", 2))
	require.Equal(t, http.StatusCreated, rec.Code)

	var view CartViewDTO
	decodeBody(t, rec, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "25.00", view.Items[0].LineTotal)
	assert.Equal(t, "25.00", view.Breakdown.Subtotal)
	assert.Equal(t, "2.00", view.Breakdown.Tax)
	assert.Equal(t, "9.99", view.Breakdown.Shipping)
	assert.Equal(t, "36.99", view.Breakdown.Total)
	assert.False(t, view.Breakdown.FreeShipping)
}

func TestAddItem_QuantityDefaultsToOne(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	body := addItemBody(1, "9.99", 0)
	delete(body, "quantity")
	rec := c.do(http.MethodPost, "/cart/items", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var view CartViewDTO
	decodeBody(t, rec, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	c.do(http.MethodPost, "/cart/items", addItemBody(1, "10.00", 1))
	rec := c.do(http.MethodPost, "/cart/items", addItemBody(1, "10.00", 2))
	require.Equal(t, http.StatusCreated, rec.Code)

	var view CartViewDTO
	decodeBody(t, rec, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestAddItem_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
		code string
	}{
		{
			name: "missing product id",
			body: addItemBody(0, "10.00", 1),
			code: "invalid_product_id",
		},
		{
			name: "negative quantity",
			body: addItemBody(1, "10.00", -1),
			code: "invalid_quantity",
		},
		{
			name: "quantity above limit",
			body: addItemBody(1, "10.00", 100),
			code: "invalid_quantity",
		},
		{
			name: "negative price",
			body: addItemBody(1, "-1.00", 1),
			code: "invalid_unit_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.newClient(t).do(http.MethodPost, "/cart/items", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp ErrorResponse
			decodeBody(t, rec, &errResp)
			assert.Equal(t, tt.code, errResp.Code)
		})
	}
}

func TestUpdateQuantity(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	c.do(http.MethodPost, "/cart/items", addItemBody(7, "5.00", 1))
	rec := c.do(http.MethodPut, "/cart/items/7", map[string]interface{}{"quantity": 4})
	require.Equal(t, http.StatusOK, rec.Code)

	var view CartViewDTO
	decodeBody(t, rec, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.Equal(t, "20.00", view.Breakdown.Subtotal)
}

func TestUpdateQuantity_RejectsZero(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	c.do(http.MethodPost, "/cart/items", addItemBody(7, "5.00", 2))
	rec := c.do(http.MethodPut, "/cart/items/7", map[string]interface{}{"quantity": 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The line is untouched.
	var view CartViewDTO
	decodeBody(t, c.do(http.MethodGet, "/cart", nil), &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	c.do(http.MethodPost, "/cart/items", addItemBody(1, "5.00", 1))
	c.do(http.MethodPost, "/cart/items", addItemBody(2, "6.00", 1))

	rec := c.do(http.MethodDelete, "/cart/items/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view CartViewDTO
	decodeBody(t, rec, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(2), view.Items[0].ProductID)
}

func TestRemoveItem_BadProductID(t *testing.T) {
	env := newTestEnv(t)
	rec := env.newClient(t).do(http.MethodDelete, "/cart/items/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearCart_RedirectsHome(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	c.do(http.MethodPost, "/cart/items", addItemBody(1, "5.00", 1))
	rec := c.do(http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClearCartResponseDTO
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Cart.IsEmpty)
	assert.Equal(t, "/", resp.Redirect)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	env := newTestEnv(t)
	first := env.newClient(t)
	second := env.newClient(t)

	first.do(http.MethodPost, "/cart/items", addItemBody(1, "5.00", 1))

	var view CartViewDTO
	decodeBody(t, second.do(http.MethodGet, "/cart", nil), &view)
	assert.True(t, view.IsEmpty)
}

func TestFreeShippingReflectedInView(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	rec := c.do(http.MethodPost, "/cart/items", addItemBody(1, "50.01", 1))
	require.Equal(t, http.StatusCreated, rec.Code)

	var view CartViewDTO
	decodeBody(t, rec, &view)
	assert.Equal(t, "0.00", view.Breakdown.Shipping)
	assert.True(t, view.Breakdown.FreeShipping)
}
