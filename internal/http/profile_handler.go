package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/ledger"
	"github.com/fjod/storefront/internal/profile"
)

type ProfileHandler struct {
	profiles *profile.Store
	ledger   *ledger.Ledger
}

func NewProfileHandler(profiles *profile.Store, l *ledger.Ledger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, ledger: l}
}

type ProfileViewDTO struct {
	Profile   domain.Profile `json:"profile"`
	Orders    []OrderDTO     `json:"orders"`
	Remaining int            `json:"remaining"`
}

type DraftResponseDTO struct {
	Draft domain.Profile `json:"draft"`
}

type SaveResponseDTO struct {
	Profile domain.Profile `json:"profile"`
	Notice  *NoticeDTO     `json:"notice,omitempty"`
}

// Get renders the profile screen: the persisted record plus the
// order-history excerpt read from the same ledger the orders screen
// uses.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Load(r.Context())
	if err != nil {
		log.Printf("profile load error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not read profile")
		return
	}

	orders, remaining, err := h.ledger.Recent(r.Context(), defaultRecentLimit)
	if err != nil {
		log.Printf("profile order history error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not read orders")
		return
	}

	respondJSON(w, http.StatusOK, ProfileViewDTO{
		Profile:   p,
		Orders:    toOrderDTOs(orders),
		Remaining: remaining,
	})
}

func (h *ProfileHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	draft, err := h.profiles.BeginEdit(r.Context())
	if err != nil {
		log.Printf("profile begin edit error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not start editing")
		return
	}
	respondJSON(w, http.StatusOK, DraftResponseDTO{Draft: draft})
}

func (h *ProfileHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var draft domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.profiles.UpdateDraft(draft)
	respondJSON(w, http.StatusOK, DraftResponseDTO{Draft: draft})
}

func (h *ProfileHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Cancel(r.Context())
	if err != nil {
		log.Printf("profile cancel error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not cancel editing")
		return
	}
	respondJSON(w, http.StatusOK, SaveResponseDTO{Profile: p})
}

func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Save(r.Context())
	if err != nil {
		if errors.Is(err, profile.ErrNoDraft) {
			respondError(w, http.StatusConflict, "no_draft", "no edit in progress")
			return
		}
		log.Printf("profile save error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not save profile")
		return
	}

	respondJSON(w, http.StatusOK, SaveResponseDTO{
		Profile: p,
		Notice:  &NoticeDTO{Kind: "success", Message: "Profile updated successfully!"},
	})
}
