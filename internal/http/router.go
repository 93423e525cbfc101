package http

import (
	"net/http"

	"github.com/fjod/storefront/internal/config"
	"github.com/fjod/storefront/internal/ledger"
	"github.com/fjod/storefront/internal/profile"
	"github.com/fjod/storefront/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the full JSON surface of the storefront.
func NewRouter(cfg *config.Config, sessions *session.Manager, l *ledger.Ledger, profiles *profile.Store) http.Handler {
	cartHandler := NewCartHandler()
	checkoutHandler := NewCheckoutHandler(profiles)
	ordersHandler := NewOrdersHandler(l)
	profileHandler := NewProfileHandler(profiles, l)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware(sessions))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
		r.Delete("/items/{product_id}", cartHandler.RemoveItem)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Get("/", checkoutHandler.GetSummary)
		r.Post("/", checkoutHandler.Submit)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ordersHandler.List)
		r.Get("/recent", ordersHandler.Recent)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", profileHandler.Get)
		r.Post("/edit", profileHandler.BeginEdit)
		r.Put("/draft", profileHandler.UpdateDraft)
		r.Post("/cancel", profileHandler.Cancel)
		r.Post("/save", profileHandler.Save)
	})

	return r
}
