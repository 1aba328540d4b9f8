package enums

// Rarity describes the collectability tier of a card. Accessories carry
// no rarity and use the empty value.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityUltraRare Rarity = "ultra-rare"
)

var rarityRanks = map[Rarity]int{
	RarityUltraRare: 3,
	RarityRare:      2,
	RarityCommon:    1,
}

// Rank returns the ordering weight for rarity sorting. Unrecognized
// values, including the empty accessory rarity, rank below common.
func (r Rarity) Rank() int {
	return rarityRanks[r]
}

// IsValid reports whether the value matches the canonical rarity enum.
func (r Rarity) IsValid() bool {
	_, ok := rarityRanks[r]
	return ok
}
