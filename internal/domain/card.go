package domain

import (
	"errors"
	"strings"
	"unicode"
)

// Card-specific validation errors
var (
	// ErrCardVariantIDEmpty is returned when a card's variant ID is empty.
	ErrCardVariantIDEmpty = errors.New("card variant ID cannot be empty")

	// ErrCardNameEmpty is returned when a card's name is empty.
	ErrCardNameEmpty = errors.New("card name cannot be empty")

	// ErrCardVariantNumberEmpty is returned when a card's variant number is empty.
	ErrCardVariantNumberEmpty = errors.New("card variant number cannot be empty")
)

// CatalogKey is the stable catalog ordering key for a card variant,
// derived from its variant number (e.g. "OGN-123a" parses into set
// prefix "OGN", number 123, suffix "a"). It is used only to order the
// introduction of new cards deterministically.
type CatalogKey struct {
	SetPrefix string `json:"set_prefix"`
	Number    int    `json:"number"`
	Suffix    string `json:"suffix"`
}

// ParseCatalogKey derives the ordering key from a variant number.
// A variant number without a "-" separator orders as (prefix, 0, "");
// non-digit characters after the separator become the suffix.
func ParseCatalogKey(variantNumber string) CatalogKey {
	prefix, rest, found := strings.Cut(variantNumber, "-")
	key := CatalogKey{SetPrefix: prefix}
	if !found {
		return key
	}

	var digits, suffix strings.Builder
	for _, r := range rest {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		} else {
			suffix.WriteRune(r)
		}
	}
	key.Suffix = suffix.String()
	for _, r := range digits.String() {
		key.Number = key.Number*10 + int(r-'0')
	}
	return key
}

// Less reports whether k orders before other in catalog order:
// set prefix first, then numeric part, then alpha suffix.
func (k CatalogKey) Less(other CatalogKey) bool {
	if k.SetPrefix != other.SetPrefix {
		return k.SetPrefix < other.SetPrefix
	}
	if k.Number != other.Number {
		return k.Number < other.Number
	}
	return k.Suffix < other.Suffix
}

// Card is one catalog entry (a card variant). The scheduler references
// cards by VariantID only; the descriptive fields exist for quiz
// presentation and feedback.
type Card struct {
	VariantID     string     `json:"variant_id"`
	Name          string     `json:"name"`
	VariantNumber string     `json:"variant_number"`
	SetName       string     `json:"set_name"`
	SuperType     string     `json:"super_type"`
	Type          string     `json:"type"`
	Rarity        string     `json:"rarity"`
	Key           CatalogKey `json:"key"`
}

// NewCard creates a Card and derives its catalog key from the variant
// number. Returns an error if required identity fields are missing.
func NewCard(variantID, name, variantNumber string) (*Card, error) {
	card := &Card{
		VariantID:     variantID,
		Name:          name,
		VariantNumber: variantNumber,
		Key:           ParseCatalogKey(variantNumber),
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

// Validate checks that the card has the fields the scheduler relies on.
func (c *Card) Validate() error {
	if c.VariantID == "" {
		return ErrCardVariantIDEmpty
	}
	if c.Name == "" {
		return ErrCardNameEmpty
	}
	if c.VariantNumber == "" {
		return ErrCardVariantNumberEmpty
	}
	return nil
}
