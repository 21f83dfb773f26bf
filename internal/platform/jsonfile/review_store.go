package jsonfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/riftbound-tools/riftdrill/internal/domain"
	"github.com/riftbound-tools/riftdrill/internal/store"
)

// ReviewFileStore implements the store.ReviewStore interface with a
// single JSON document mapping card variant IDs to review state.
type ReviewFileStore struct {
	path   string
	states map[string]*domain.ReviewState
	logger *slog.Logger
}

// NewReviewFileStore loads the review document at path. A missing file
// starts an empty store; a malformed file is logged and replaced with
// an empty store on the next write rather than aborting startup.
// If logger is nil, the default logger is used.
func NewReviewFileStore(path string, logger *slog.Logger) (*ReviewFileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("review store path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "review_store"))

	s := &ReviewFileStore{
		path:   path,
		states: make(map[string]*domain.ReviewState),
		logger: logger,
	}
	s.load()
	return s, nil
}

// Ensure ReviewFileStore implements store.ReviewStore
var _ store.ReviewStore = (*ReviewFileStore)(nil)

func (s *ReviewFileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read review store, starting empty",
				"path", s.path, "error", err)
		}
		return
	}

	var states map[string]*domain.ReviewState
	if err := json.Unmarshal(data, &states); err != nil {
		s.logger.Warn("review store is malformed, starting empty",
			"path", s.path, "error", err)
		return
	}
	if states != nil {
		s.states = states
	}
}

// Get implements store.ReviewStore.Get
func (s *ReviewFileStore) Get(cardID string) (*domain.ReviewState, bool) {
	state, ok := s.states[cardID]
	if !ok {
		return nil, false
	}
	return state.Clone(), true
}

// Put implements store.ReviewStore.Put
// The updated document is persisted before the in-memory map is
// replaced, so a failed write leaves the store consistent with disk.
func (s *ReviewFileStore) Put(cardID string, state *domain.ReviewState) error {
	if cardID == "" {
		return fmt.Errorf("%w: %s", store.ErrInvalidEntity, domain.ErrEmptyCardID)
	}
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %s", store.ErrInvalidEntity, err)
	}

	next := make(map[string]*domain.ReviewState, len(s.states)+1)
	for id, st := range s.states {
		next[id] = st
	}
	next[cardID] = state.Clone()

	if err := writeDocument(s.path, next); err != nil {
		return fmt.Errorf("%w: %s", store.ErrWriteFailed, err)
	}
	s.states = next
	return nil
}

// Len implements store.ReviewStore.Len
func (s *ReviewFileStore) Len() int {
	return len(s.states)
}

// Reset implements store.ReviewStore.Reset
func (s *ReviewFileStore) Reset() error {
	empty := make(map[string]*domain.ReviewState)
	if err := writeDocument(s.path, empty); err != nil {
		return fmt.Errorf("%w: %s", store.ErrWriteFailed, err)
	}
	s.states = empty
	s.logger.Info("review store cleared", "path", s.path)
	return nil
}
