package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/riftbound-tools/riftdrill/internal/domain"
	"github.com/riftbound-tools/riftdrill/internal/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

// CatalogStore implements the store.CardCatalog interface backed by a
// local SQLite database file.
type CatalogStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenCatalog opens (creating if needed) the catalog database at path
// and runs any pending schema migrations. If logger is nil, the
// default logger is used.
func OpenCatalog(path string, logger *slog.Logger) (*CatalogStore, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "catalog_store"))

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	// modernc.org/sqlite serializes access per connection; a single
	// connection avoids SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	return &CatalogStore{db: db, logger: logger}, nil
}

// Ensure CatalogStore implements store.CardCatalog
var _ store.CardCatalog = (*CatalogStore)(nil)

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// Close releases the underlying database handle.
func (s *CatalogStore) Close() error {
	return s.db.Close()
}

const cardColumns = `variant_id, name, variant_number, set_name, super, type, rarity,
	set_prefix, variant_order_num, variant_order_suffix`

func scanCard(row interface{ Scan(...any) error }) (*domain.Card, error) {
	var c domain.Card
	err := row.Scan(
		&c.VariantID, &c.Name, &c.VariantNumber, &c.SetName, &c.SuperType,
		&c.Type, &c.Rarity, &c.Key.SetPrefix, &c.Key.Number, &c.Key.Suffix,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAllCards implements store.CardCatalog.ListAllCards
func (s *CatalogStore) ListAllCards(ctx context.Context) ([]*domain.Card, error) {
	query := `SELECT ` + cardColumns + `
		FROM cards
		ORDER BY set_prefix, variant_order_num, variant_order_suffix`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}
	return cards, nil
}

// GetCard implements store.CardCatalog.GetCard
func (s *CatalogStore) GetCard(ctx context.Context, variantID string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE variant_id = ?`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, variantID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %s: %w", variantID, err)
	}
	return card, nil
}

// Count implements store.CardCatalog.Count
func (s *CatalogStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return n, nil
}
