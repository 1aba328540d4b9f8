package catalog

import (
	"testing"

	"github.com/tcgperu/storefront-backend/pkg/enums"
)

func rarityItem(id string, rarity enums.Rarity) Item {
	return Item{ID: id, Name: id, Rarity: rarity, Category: enums.ItemCategoryPokemon}
}

func TestSortPrice(t *testing.T) {
	t.Parallel()

	items := []Item{
		testItem("a", "A", 30, enums.ItemCategoryPokemon),
		testItem("b", "B", 10, enums.ItemCategoryPokemon),
		testItem("c", "C", 20, enums.ItemCategoryPokemon),
	}

	asc := Sort(items, enums.SortKeyPriceAsc)
	if asc[0].ID != "b" || asc[1].ID != "c" || asc[2].ID != "a" {
		t.Fatalf("unexpected ascending order: %v", ids(asc))
	}

	desc := Sort(items, enums.SortKeyPriceDesc)
	if desc[0].ID != "a" || desc[1].ID != "c" || desc[2].ID != "b" {
		t.Fatalf("unexpected descending order: %v", ids(desc))
	}

	// Input order untouched.
	if items[0].ID != "a" {
		t.Fatalf("sort mutated input slice")
	}
}

func TestSortName(t *testing.T) {
	t.Parallel()

	items := []Item{
		testItem("1", "Pikachu", 1, enums.ItemCategoryPokemon),
		testItem("2", "charizard", 1, enums.ItemCategoryPokemon),
		testItem("3", "Ñoño Binder", 1, enums.ItemCategoryAccessory),
		testItem("4", "Eevee", 1, enums.ItemCategoryPokemon),
	}

	asc := Sort(items, enums.SortKeyNameAsc)
	if asc[0].Name != "charizard" || asc[1].Name != "Eevee" {
		t.Fatalf("expected case-insensitive collation, got %v", names(asc))
	}
	// Spanish collation orders ñ after n, and both before p.
	if asc[2].Name != "Ñoño Binder" || asc[3].Name != "Pikachu" {
		t.Fatalf("unexpected collation order: %v", names(asc))
	}

	desc := Sort(items, enums.SortKeyNameDesc)
	if desc[0].Name != "Pikachu" || desc[3].Name != "charizard" {
		t.Fatalf("unexpected descending order: %v", names(desc))
	}
}

func TestSortRarityDescending(t *testing.T) {
	t.Parallel()

	items := []Item{
		rarityItem("c1", enums.RarityCommon),
		rarityItem("u1", enums.RarityUltraRare),
		rarityItem("r1", enums.RarityRare),
		rarityItem("c2", enums.RarityCommon),
	}

	sorted := Sort(items, enums.SortKeyRarityDesc)
	want := []string{"u1", "r1", "c1", "c2"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d: expected %s, got %v", i, id, ids(sorted))
		}
	}
}

func TestSortRarityUnrecognizedRanksLast(t *testing.T) {
	t.Parallel()

	items := []Item{
		rarityItem("x", enums.Rarity("promo")),
		rarityItem("c", enums.RarityCommon),
		rarityItem("", enums.Rarity("")),
	}
	items[2].ID = "none"

	sorted := Sort(items, enums.SortKeyRarityDesc)
	if sorted[0].ID != "c" {
		t.Fatalf("expected common first, got %v", ids(sorted))
	}
	// Unrecognized rarities tie at rank 0 and keep their relative order.
	if sorted[1].ID != "x" || sorted[2].ID != "none" {
		t.Fatalf("expected stable tie order, got %v", ids(sorted))
	}
}

func TestSortIsStableOnEqualKeys(t *testing.T) {
	t.Parallel()

	items := []Item{
		testItem("first", "Same", 10, enums.ItemCategoryPokemon),
		testItem("second", "Same", 10, enums.ItemCategoryPokemon),
		testItem("third", "Same", 10, enums.ItemCategoryPokemon),
	}

	for _, key := range []enums.SortKey{
		enums.SortKeyPriceAsc,
		enums.SortKeyPriceDesc,
		enums.SortKeyNameAsc,
		enums.SortKeyNameDesc,
		enums.SortKeyRarityDesc,
	} {
		sorted := Sort(items, key)
		if sorted[0].ID != "first" || sorted[1].ID != "second" || sorted[2].ID != "third" {
			t.Fatalf("key %s broke tie order: %v", key, ids(sorted))
		}
	}
}

func TestSortNoneKeepsOriginalOrder(t *testing.T) {
	t.Parallel()

	items := []Item{
		testItem("z", "Zubat", 3, enums.ItemCategoryPokemon),
		testItem("a", "Abra", 1, enums.ItemCategoryPokemon),
	}

	sorted := Sort(items, enums.SortKeyNone)
	if sorted[0].ID != "z" || sorted[1].ID != "a" {
		t.Fatalf("none should keep order, got %v", ids(sorted))
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}
