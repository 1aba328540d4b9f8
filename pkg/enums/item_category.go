package enums

import "fmt"

// ItemCategory describes the catalog section an item belongs to.
type ItemCategory string

const (
	ItemCategoryPokemon   ItemCategory = "pokemon"
	ItemCategoryTrainer   ItemCategory = "trainer"
	ItemCategoryEnergy    ItemCategory = "energy"
	ItemCategoryAccessory ItemCategory = "accessory"
)

var validItemCategories = []ItemCategory{
	ItemCategoryPokemon,
	ItemCategoryTrainer,
	ItemCategoryEnergy,
	ItemCategoryAccessory,
}

// IsValid reports whether the value matches the canonical item category enum.
func (c ItemCategory) IsValid() bool {
	for _, candidate := range validItemCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseItemCategory converts the raw string to ItemCategory.
func ParseItemCategory(value string) (ItemCategory, error) {
	for _, candidate := range validItemCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item category %q", value)
}
