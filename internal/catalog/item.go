package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tcgperu/storefront-backend/pkg/enums"
	pkgerrors "github.com/tcgperu/storefront-backend/pkg/errors"
)

// Item is one catalog entry. The set is loaded once at startup and is
// immutable afterwards; numeric parsing happens here, never per filter
// pass.
type Item struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	Category      enums.ItemCategory
	Rarity        enums.Rarity
	SetID         string
	Language      string
	IsRecommended bool

	// Display-only fields, carried into cart snapshots untouched.
	Image     string
	Stock     string
	Condition string
	Details   string
}

// feedItem mirrors one record of the JSON catalog feed.
type feedItem struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Price         json.RawMessage `json:"price"`
	Category      string          `json:"category" validate:"required"`
	Rarity        string          `json:"rarity"`
	SetID         string          `json:"set_id"`
	Language      string          `json:"language"`
	IsRecommended bool            `json:"is_recommended"`
	Image         string          `json:"image"`
	Stock         string          `json:"stock"`
	Condition     string          `json:"condition"`
	Details       string          `json:"details"`
}

var validate = validator.New()

// Index holds the immutable item set in feed order.
type Index struct {
	items []Item
	byID  map[string]Item
}

// NewIndex builds an index over the given items, enforcing unique ids
// and non-negative prices.
func NewIndex(items []Item) (*Index, error) {
	byID := make(map[string]Item, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog item id is required")
		}
		if _, exists := byID[item.ID]; exists {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("duplicate catalog item id %q", item.ID))
		}
		if item.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("catalog item %q has negative price", item.ID))
		}
		byID[item.ID] = item
	}
	stored := make([]Item, len(items))
	copy(stored, items)
	return &Index{items: stored, byID: byID}, nil
}

// LoadFeed reads and validates the catalog feed file.
func LoadFeed(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read catalog feed")
	}

	var records []feedItem
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode catalog feed")
	}

	items := make([]Item, 0, len(records))
	for i, record := range records {
		item, err := record.toItem()
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("catalog feed record %d", i))
		}
		items = append(items, item)
	}

	return NewIndex(items)
}

func (f feedItem) toItem() (Item, error) {
	if err := validate.Struct(f); err != nil {
		return Item{}, err
	}

	category, err := enums.ParseItemCategory(strings.ToLower(strings.TrimSpace(f.Category)))
	if err != nil {
		return Item{}, err
	}

	price := parsePrice(f.Price)
	if price.IsNegative() {
		return Item{}, fmt.Errorf("negative price %s", price)
	}

	return Item{
		ID:            f.ID,
		Name:          f.Name,
		Price:         price,
		Category:      category,
		Rarity:        enums.Rarity(strings.ToLower(strings.TrimSpace(f.Rarity))),
		SetID:         strings.ToLower(strings.TrimSpace(f.SetID)),
		Language:      strings.ToLower(strings.TrimSpace(f.Language)),
		IsRecommended: f.IsRecommended,
		Image:         f.Image,
		Stock:         f.Stock,
		Condition:     f.Condition,
		Details:       f.Details,
	}, nil
}

// parsePrice accepts a JSON number or numeric string; malformed or
// missing values become zero.
func parsePrice(raw json.RawMessage) decimal.Decimal {
	value := strings.TrimSpace(string(raw))
	value = strings.Trim(value, `"`)
	if value == "" || value == "null" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// Items returns the item set in feed order. The slice is a copy; the
// index itself never changes.
func (x *Index) Items() []Item {
	items := make([]Item, len(x.items))
	copy(items, x.items)
	return items
}

// Get returns the item with the given id.
func (x *Index) Get(id string) (Item, bool) {
	item, ok := x.byID[id]
	return item, ok
}

// Len returns the total item count.
func (x *Index) Len() int {
	return len(x.items)
}
