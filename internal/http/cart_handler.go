package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fjod/storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type AddItemRequestDTO struct {
	ProductID   int64           `json:"product_id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Thumbnail   string          `json:"thumbnail"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	respondJSON(w, http.StatusOK, cartView(s.Cart.Items()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}
	if req.UnitPrice.IsNegative() {
		respondError(w, http.StatusBadRequest, "invalid_unit_price", "unit_price must not be negative")
		return
	}

	s.Cart.Add(domain.LineItem{
		ProductID:   req.ProductID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		UnitPrice:   req.UnitPrice,
	}, req.Quantity)

	respondJSON(w, http.StatusCreated, cartView(s.Cart.Items()))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())

	productID, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 1 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	s.Cart.UpdateQuantity(productID, req.Quantity)
	respondJSON(w, http.StatusOK, cartView(s.Cart.Items()))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())

	productID, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	s.Cart.Remove(productID)
	respondJSON(w, http.StatusOK, cartView(s.Cart.Items()))
}

type ClearCartResponseDTO struct {
	Cart     CartViewDTO `json:"cart"`
	Redirect string      `json:"redirect,omitempty"`
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())

	s.Cart.Clear()
	s.Flash.GoTo("/")
	route, _, _ := s.Flash.Drain()

	respondJSON(w, http.StatusOK, ClearCartResponseDTO{
		Cart:     cartView(s.Cart.Items()),
		Redirect: route,
	})
}

func parseProductID(r *http.Request) (int64, error) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return 0, strconv.ErrSyntax
	}
	return productID, nil
}
