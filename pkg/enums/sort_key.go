package enums

import "fmt"

// SortKey selects the catalog ordering applied after filtering.
type SortKey string

const (
	SortKeyNone       SortKey = "none"
	SortKeyPriceAsc   SortKey = "price-asc"
	SortKeyPriceDesc  SortKey = "price-desc"
	SortKeyNameAsc    SortKey = "name-asc"
	SortKeyNameDesc   SortKey = "name-desc"
	SortKeyRarityDesc SortKey = "rarity-desc"
)

var validSortKeys = []SortKey{
	SortKeyNone,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
	SortKeyNameAsc,
	SortKeyNameDesc,
	SortKeyRarityDesc,
}

// IsValid reports whether the value matches the canonical sort key enum.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts the raw string to SortKey. The empty string maps
// to SortKeyNone so an absent query parameter keeps the original order.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyNone, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
