// Package profile persists the storefront user's shipping/contact
// record and manages the edit draft for it.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/kv"
)

const profileKey = "userDetails"

// ErrNoDraft is returned by Save when no edit is in progress.
var ErrNoDraft = errors.New("no draft to save")

// Notifier receives user-facing confirmation of a successful save.
// Consumers define this interface, not the UI layer.
type Notifier interface {
	Notify(kind, message string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}

// Store holds the persisted record plus at most one live draft. The
// draft never partially merges into the persisted record: Save commits
// it wholesale, Cancel discards it.
type Store struct {
	mu       sync.Mutex
	store    kv.Store
	notifier Notifier
	draft    *domain.Profile
}

func New(store kv.Store, notifier Notifier) *Store {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Store{store: store, notifier: notifier}
}

// Load returns the persisted record. An absent or unparseable value
// yields the all-empty-string record, never an error visible to the
// user.
func (s *Store) Load(ctx context.Context) (domain.Profile, error) {
	raw, err := s.store.Get(ctx, profileKey)
	if errors.Is(err, kv.ErrNotFound) {
		return domain.Profile{}, nil
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read profile failed: %w", err)
	}

	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("stored profile not parseable, treating as empty: %v", err)
		return domain.Profile{}, nil
	}
	return p, nil
}

// BeginEdit copies the persisted record into a fresh draft and returns
// the copy. A previous unsaved draft is replaced.
func (s *Store) BeginEdit(ctx context.Context) (domain.Profile, error) {
	p, err := s.Load(ctx)
	if err != nil {
		return domain.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	draft := p
	s.draft = &draft
	return draft, nil
}

// UpdateDraft replaces the draft wholesale. Starting an edit
// implicitly when none is in progress keeps the two-slot model: there
// is never more than one draft live.
func (s *Store) UpdateDraft(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &p
}

// Draft returns the current draft, if an edit is in progress.
func (s *Store) Draft() (domain.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return domain.Profile{}, false
	}
	return *s.draft, true
}

// Cancel discards the draft and returns the persisted record
// unchanged. Previously saved data is never touched.
func (s *Store) Cancel(ctx context.Context) (domain.Profile, error) {
	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()
	return s.Load(ctx)
}

// Save persists the draft wholesale, makes it the new source of truth
// and clears the draft slot. The stored record is untouched on
// failure.
func (s *Store) Save(ctx context.Context) (domain.Profile, error) {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return domain.Profile{}, ErrNoDraft
	}
	p := *s.draft
	s.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("marshal profile failed: %w", err)
	}
	if err := s.store.Set(ctx, profileKey, string(data)); err != nil {
		return domain.Profile{}, fmt.Errorf("persist profile failed: %w", err)
	}

	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()

	s.notifier.Notify("success", "Profile updated successfully!")
	return p, nil
}
