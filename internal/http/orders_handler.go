package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/fjod/storefront/internal/ledger"
)

const defaultRecentLimit = 5

type OrdersHandler struct {
	ledger *ledger.Ledger
}

func NewOrdersHandler(l *ledger.Ledger) *OrdersHandler {
	return &OrdersHandler{ledger: l}
}

type OrdersResponseDTO struct {
	Orders []OrderDTO `json:"orders"`
	Total  int        `json:"total"`
}

type RecentOrdersResponseDTO struct {
	Orders    []OrderDTO `json:"orders"`
	Remaining int        `json:"remaining"`
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ledger.ListAll(r.Context())
	if err != nil {
		log.Printf("list orders error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not read orders")
		return
	}

	respondJSON(w, http.StatusOK, OrdersResponseDTO{
		Orders: toOrderDTOs(orders),
		Total:  len(orders),
	})
}

func (h *OrdersHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	orders, remaining, err := h.ledger.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("recent orders error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not read orders")
		return
	}

	respondJSON(w, http.StatusOK, RecentOrdersResponseDTO{
		Orders:    toOrderDTOs(orders),
		Remaining: remaining,
	})
}
