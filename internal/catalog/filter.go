package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Criteria is the combined set of active filter predicates, rebuilt by
// the caller on every filter pass. Empty values impose no constraint.
type Criteria struct {
	Search          string
	RecommendedOnly bool
	Types           []string
	Rarities        []string
	SetIDs          []string
	Language        string
	MinPrice        decimal.Decimal
	MaxPrice        *decimal.Decimal // nil means unbounded
}

// Visibility is the outcome of one filter pass.
type Visibility struct {
	VisibleIDs   map[string]struct{}
	VisibleCount int
	TotalCount   int
}

// Visible reports whether the given id survived the filter pass.
func (v Visibility) Visible(id string) bool {
	_, ok := v.VisibleIDs[id]
	return ok
}

// ResolveSearch picks the effective search term when both search inputs
// are active: the catalog-level input wins over the header-level one.
func ResolveSearch(headerSearch, catalogSearch string) string {
	if catalogSearch != "" {
		return catalogSearch
	}
	return headerSearch
}

// ComputeVisibility evaluates every predicate against every item. An
// item is visible iff all predicates hold. The pass is pure: identical
// criteria always yield identical results.
func ComputeVisibility(items []Item, criteria Criteria) Visibility {
	matcher := newMatcher(criteria)

	visible := make(map[string]struct{})
	for _, item := range items {
		if matcher.matches(item) {
			visible[item.ID] = struct{}{}
		}
	}

	return Visibility{
		VisibleIDs:   visible,
		VisibleCount: len(visible),
		TotalCount:   len(items),
	}
}

// VisibleItems materializes the visible subset in original order.
func VisibleItems(items []Item, v Visibility) []Item {
	result := make([]Item, 0, v.VisibleCount)
	for _, item := range items {
		if v.Visible(item.ID) {
			result = append(result, item)
		}
	}
	return result
}

// ParseMinPrice normalizes the lower price bound: unparsable input
// falls back to zero rather than failing.
func ParseMinPrice(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	return value
}

// ParseMaxPrice normalizes the upper price bound: unparsable or empty
// input means unbounded.
func ParseMaxPrice(raw string) *decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &value
}

// matcher holds the criteria with its string dimensions case-folded
// once per pass.
type matcher struct {
	search          string
	recommendedOnly bool
	types           map[string]struct{}
	rarities        map[string]struct{}
	setIDs          map[string]struct{}
	language        string
	minPrice        decimal.Decimal
	maxPrice        *decimal.Decimal
}

func newMatcher(criteria Criteria) matcher {
	return matcher{
		search:          strings.ToLower(strings.TrimSpace(criteria.Search)),
		recommendedOnly: criteria.RecommendedOnly,
		types:           foldSet(criteria.Types),
		rarities:        foldSet(criteria.Rarities),
		setIDs:          foldSet(criteria.SetIDs),
		language:        strings.ToLower(strings.TrimSpace(criteria.Language)),
		minPrice:        criteria.MinPrice,
		maxPrice:        criteria.MaxPrice,
	}
}

func (m matcher) matches(item Item) bool {
	if m.search != "" && !strings.Contains(strings.ToLower(item.Name), m.search) {
		return false
	}
	if m.recommendedOnly && !item.IsRecommended {
		return false
	}
	if len(m.types) > 0 {
		if _, ok := m.types[string(item.Category)]; !ok {
			return false
		}
	}
	if len(m.rarities) > 0 {
		if _, ok := m.rarities[string(item.Rarity)]; !ok {
			return false
		}
	}
	if len(m.setIDs) > 0 {
		if _, ok := m.setIDs[strings.ToLower(item.SetID)]; !ok {
			return false
		}
	}
	if m.language != "" && !strings.Contains(strings.ToLower(item.Language), m.language) {
		return false
	}
	if item.Price.LessThan(m.minPrice) {
		return false
	}
	if m.maxPrice != nil && item.Price.GreaterThan(*m.maxPrice) {
		return false
	}
	return true
}

func foldSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		set[value] = struct{}{}
	}
	return set
}
