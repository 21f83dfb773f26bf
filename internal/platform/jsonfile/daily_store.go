package jsonfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/riftbound-tools/riftdrill/internal/domain"
	"github.com/riftbound-tools/riftdrill/internal/store"
)

// DailyFileStore implements the store.DailyStore interface with a
// single JSON document holding the daily quota singleton.
type DailyFileStore struct {
	path       string
	defaultCap int
	progress   *domain.DailyProgress
	logger     *slog.Logger
}

// NewDailyFileStore loads the daily quota document at path. A missing
// or malformed file yields a fresh DailyProgress for today with the
// given default cap. If logger is nil, the default logger is used.
func NewDailyFileStore(path string, defaultCap int, logger *slog.Logger) (*DailyFileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("daily store path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "daily_store"))

	s := &DailyFileStore{
		path:       path,
		defaultCap: defaultCap,
		logger:     logger,
	}
	s.load()
	return s, nil
}

// Ensure DailyFileStore implements store.DailyStore
var _ store.DailyStore = (*DailyFileStore)(nil)

func (s *DailyFileStore) load() {
	fallback := domain.NewDailyProgress(domain.Today(), s.defaultCap)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read daily store, using defaults",
				"path", s.path, "error", err)
		}
		s.progress = fallback
		return
	}

	var progress domain.DailyProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		s.logger.Warn("daily store is malformed, using defaults",
			"path", s.path, "error", err)
		s.progress = fallback
		return
	}
	if err := progress.Validate(); err != nil {
		s.logger.Warn("daily store failed validation, using defaults",
			"path", s.path, "error", err)
		s.progress = fallback
		return
	}
	if progress.Introduced == nil {
		progress.Introduced = []string{}
	}
	s.progress = &progress
}

// Current implements store.DailyStore.Current
func (s *DailyFileStore) Current() *domain.DailyProgress {
	return s.progress.Clone()
}

// Update implements store.DailyStore.Update
func (s *DailyFileStore) Update(progress *domain.DailyProgress) error {
	if err := progress.Validate(); err != nil {
		return fmt.Errorf("%w: %s", store.ErrInvalidEntity, err)
	}

	clone := progress.Clone()
	if err := writeDocument(s.path, clone); err != nil {
		return fmt.Errorf("%w: %s", store.ErrWriteFailed, err)
	}
	s.progress = clone
	return nil
}
