package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/riftbound-tools/riftdrill/internal/domain"
)

// archiveExport mirrors the scraped Piltover Archive JSON export.
type archiveExport struct {
	Variants []archiveVariant `json:"variants"`
}

type archiveVariant struct {
	VariantID     string     `json:"variantId"`
	VariantNumber string     `json:"variantNumber"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Super         string     `json:"super"`
	Rarity        string     `json:"rarity"`
	Set           archiveSet `json:"set"`
}

type archiveSet struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// ImportFromJSON loads the archive export at path into the catalog,
// replacing existing entries with the same variant ID. Variants with a
// missing ID or variant number are skipped and counted. The whole
// import runs in one transaction.
// Returns the number of imported variants.
func (s *CatalogStore) ImportFromJSON(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read export file: %w", err)
	}

	var export archiveExport
	if err := json.Unmarshal(data, &export); err != nil {
		return 0, fmt.Errorf("failed to parse export file: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO cards (
			variant_id, name, variant_number, set_name, super, type, rarity,
			set_prefix, variant_order_num, variant_order_suffix
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare import statement: %w", err)
	}
	defer stmt.Close()

	imported, skipped := 0, 0
	for _, v := range export.Variants {
		if v.VariantID == "" || v.VariantNumber == "" {
			skipped++
			continue
		}

		key := domain.ParseCatalogKey(v.VariantNumber)
		prefix := v.Set.Prefix
		if prefix == "" {
			prefix = key.SetPrefix
		}

		_, err := stmt.ExecContext(ctx,
			v.VariantID, v.Name, v.VariantNumber, v.Set.Name, v.Super, v.Type,
			v.Rarity, prefix, key.Number, key.Suffix,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to import variant %s: %w", v.VariantID, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	s.logger.Info("catalog import complete",
		"path", path, "imported", imported, "skipped", skipped)
	return imported, nil
}
