package store

import (
	"context"

	"github.com/riftbound-tools/riftdrill/internal/domain"
)

// CardCatalog defines the read interface onto the card catalog. The
// scheduler consumes only the stable variant ID and the catalog
// ordering key; the descriptive fields feed quiz presentation.
type CardCatalog interface {
	// ListAllCards returns every catalog entry in stable catalog order:
	// set prefix, then numeric part, then alpha suffix.
	ListAllCards(ctx context.Context) ([]*domain.Card, error)

	// GetCard retrieves a single card by variant ID.
	// Returns ErrCardNotFound if no such card exists.
	GetCard(ctx context.Context, variantID string) (*domain.Card, error)

	// Count returns the number of catalog entries.
	Count(ctx context.Context) (int, error)
}
