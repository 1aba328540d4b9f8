package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tcgperu/storefront-backend/pkg/enums"
)

// Sort returns a new slice ordered by the given key. The sort is stable:
// items comparing equal keep their original relative order. SortKeyNone
// returns the input order unchanged.
func Sort(items []Item, key enums.SortKey) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	switch key {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case enums.SortKeyPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.GreaterThan(sorted[j].Price)
		})
	case enums.SortKeyNameAsc:
		collator := newNameCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case enums.SortKeyNameDesc:
		collator := newNameCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	case enums.SortKeyRarityDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rarity.Rank() > sorted[j].Rarity.Rank()
		})
	}

	return sorted
}

// newNameCollator builds a fresh collator per sort; collate.Collator is
// not safe for concurrent use. The storefront displays Spanish names.
func newNameCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase)
}
