package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/storefront/internal/checkout"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/profile"
)

type CheckoutHandler struct {
	profiles *profile.Store
}

func NewCheckoutHandler(profiles *profile.Store) *CheckoutHandler {
	return &CheckoutHandler{profiles: profiles}
}

type CheckoutSummaryDTO struct {
	Cart         CartViewDTO         `json:"cart"`
	FormDefaults domain.ShippingInfo `json:"form_defaults"`
	Status       string              `json:"status"`
}

type CardDTO struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type SubmitRequestDTO struct {
	ShippingInfo  domain.ShippingInfo `json:"shipping_info"`
	PaymentMethod string              `json:"payment_method"`
	Card          CardDTO             `json:"card"`
	PayPalEmail   string              `json:"paypal_email"`
}

type SubmitResponseDTO struct {
	Order    OrderDTO   `json:"order"`
	Notice   *NoticeDTO `json:"notice,omitempty"`
	Redirect string     `json:"redirect,omitempty"`
}

// GetSummary renders the checkout screen's data: the current cart with
// a fresh breakdown, and shipping form defaults seeded from the saved
// profile when one exists.
func (h *CheckoutHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())

	if s.Cart.IsEmpty() {
		respondError(w, http.StatusConflict, "empty_cart", "Your cart is empty. Add some items before checkout.")
		return
	}

	defaults, err := h.profiles.Load(r.Context())
	if err != nil {
		// seeding is an opportunity, not a requirement
		log.Printf("profile load for checkout defaults failed: %v", err)
		defaults = domain.Profile{}
	}

	respondJSON(w, http.StatusOK, CheckoutSummaryDTO{
		Cart: cartView(s.Cart.Items()),
		FormDefaults: domain.ShippingInfo{
			Name:    defaults.Name,
			Email:   defaults.Email,
			Address: defaults.Address,
			City:    defaults.City,
			ZipCode: defaults.ZipCode,
		},
		Status: s.Checkout.Status().String(),
	})
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())

	var req SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	form := checkout.Form{
		Shipping:      req.ShippingInfo,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Card: checkout.CardDetails{
			Number: req.Card.Number,
			Expiry: req.Card.Expiry,
			CVV:    req.Card.CVV,
		},
		PayPalEmail: req.PayPalEmail,
	}

	order, err := s.Checkout.Submit(r.Context(), form)
	if err != nil {
		handleSubmitError(w, err)
		return
	}

	route, kind, message := s.Flash.Drain()
	resp := SubmitResponseDTO{
		Order:    toOrderDTO(*order),
		Redirect: route,
	}
	if message != "" {
		resp.Notice = &NoticeDTO{Kind: kind, Message: message}
	}
	respondJSON(w, http.StatusCreated, resp)
}

func handleSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrValidation):
		respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", "Your cart is empty. Add some items before checkout.")
	case errors.Is(err, checkout.ErrSubmitInProgress):
		respondError(w, http.StatusConflict, "duplicate_submission", "a submission is already in progress")
	case errors.Is(err, checkout.ErrPaymentFailed):
		respondError(w, http.StatusBadGateway, "payment_failed", err.Error())
	default:
		log.Printf("checkout submit error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not place the order")
	}
}
