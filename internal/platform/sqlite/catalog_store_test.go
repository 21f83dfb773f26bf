package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftbound-tools/riftdrill/internal/store"
)

const exportFixture = `{
  "variants": [
    {
      "variantId": "v-ogn-10",
      "variantNumber": "OGN-10",
      "name": "Jinx, the Loose Cannon",
      "type": "Champion Unit",
      "super": "Champion",
      "rarity": "Rare",
      "set": {"name": "Origins", "prefix": "OGN"}
    },
    {
      "variantId": "v-ogn-2",
      "variantNumber": "OGN-2",
      "name": "Teemo",
      "type": "Unit",
      "rarity": "Common",
      "set": {"name": "Origins", "prefix": "OGN"}
    },
    {
      "variantId": "v-ogn-10a",
      "variantNumber": "OGN-10a",
      "name": "Jinx, the Loose Cannon",
      "type": "Champion Unit",
      "rarity": "Epic",
      "set": {"name": "Origins", "prefix": "OGN"}
    },
    {
      "variantId": "",
      "variantNumber": "OGN-99",
      "name": "Broken Entry",
      "type": "Unit",
      "rarity": "Common",
      "set": {"name": "Origins", "prefix": "OGN"}
    }
  ]
}`

func openTestCatalog(t *testing.T) *CatalogStore {
	t.Helper()

	s, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	exportPath := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(exportPath, []byte(exportFixture), 0o644))

	imported, err := s.ImportFromJSON(context.Background(), exportPath)
	require.NoError(t, err)
	require.Equal(t, 3, imported) // entry without a variant ID is skipped

	return s
}

func TestListAllCardsOrdering(t *testing.T) {
	t.Parallel()
	s := openTestCatalog(t)

	cards, err := s.ListAllCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 3)

	// Catalog order: numeric part before suffix, 2 before 10.
	assert.Equal(t, "v-ogn-2", cards[0].VariantID)
	assert.Equal(t, "v-ogn-10", cards[1].VariantID)
	assert.Equal(t, "v-ogn-10a", cards[2].VariantID)

	assert.Equal(t, "OGN", cards[1].Key.SetPrefix)
	assert.Equal(t, 10, cards[1].Key.Number)
	assert.Equal(t, "a", cards[2].Key.Suffix)
}

func TestGetCard(t *testing.T) {
	t.Parallel()
	s := openTestCatalog(t)

	card, err := s.GetCard(context.Background(), "v-ogn-10")
	require.NoError(t, err)
	assert.Equal(t, "Jinx, the Loose Cannon", card.Name)
	assert.Equal(t, "Origins", card.SetName)
	assert.Equal(t, "Champion", card.SuperType)

	_, err = s.GetCard(context.Background(), "v-missing")
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestCount(t *testing.T) {
	t.Parallel()
	s := openTestCatalog(t)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestImportReplacesExisting(t *testing.T) {
	t.Parallel()
	s := openTestCatalog(t)

	updated := `{"variants": [{
		"variantId": "v-ogn-2",
		"variantNumber": "OGN-2",
		"name": "Teemo, Swift Scout",
		"type": "Unit",
		"rarity": "Common",
		"set": {"name": "Origins", "prefix": "OGN"}
	}]}`
	path := filepath.Join(t.TempDir(), "update.json")
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	imported, err := s.ImportFromJSON(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n) // replaced, not added

	card, err := s.GetCard(context.Background(), "v-ogn-2")
	require.NoError(t, err)
	assert.Equal(t, "Teemo, Swift Scout", card.Name)
}
