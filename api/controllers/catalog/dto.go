package catalog

import (
	catalogsvc "github.com/tcgperu/storefront-backend/internal/catalog"
)

// ItemDTO is the catalog item payload returned to clients. Prices are
// fixed to two decimals for display.
type ItemDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	Category      string `json:"category"`
	Rarity        string `json:"rarity,omitempty"`
	SetID         string `json:"set_id,omitempty"`
	Language      string `json:"language,omitempty"`
	IsRecommended bool   `json:"is_recommended"`
	Image         string `json:"image,omitempty"`
	Stock         string `json:"stock,omitempty"`
	Condition     string `json:"condition,omitempty"`
	Details       string `json:"details,omitempty"`
}

// ListResponse carries the visible, ordered catalog slice plus counts.
type ListResponse struct {
	Items        []ItemDTO `json:"items"`
	VisibleCount int       `json:"visible_count"`
	TotalCount   int       `json:"total_count"`
	Sort         string    `json:"sort"`
}

// VisibilityRequest is the structured criteria accepted by the
// visibility endpoint. Both search inputs may be present; the
// catalog-level one wins.
type VisibilityRequest struct {
	Search          string   `json:"search"`
	HeaderSearch    string   `json:"header_search"`
	RecommendedOnly bool     `json:"recommended_only"`
	Types           []string `json:"types"`
	Rarities        []string `json:"rarities"`
	SetIDs          []string `json:"set_ids"`
	Language        string   `json:"language"`
	MinPrice        string   `json:"min_price"`
	MaxPrice        string   `json:"max_price"`
}

// VisibilityResponse lists the surviving ids in catalog order.
type VisibilityResponse struct {
	VisibleIDs   []string `json:"visible_ids"`
	VisibleCount int      `json:"visible_count"`
	TotalCount   int      `json:"total_count"`
}

func newItemDTO(item catalogsvc.Item) ItemDTO {
	return ItemDTO{
		ID:            item.ID,
		Name:          item.Name,
		Price:         item.Price.StringFixed(2),
		Category:      string(item.Category),
		Rarity:        string(item.Rarity),
		SetID:         item.SetID,
		Language:      item.Language,
		IsRecommended: item.IsRecommended,
		Image:         item.Image,
		Stock:         item.Stock,
		Condition:     item.Condition,
		Details:       item.Details,
	}
}

func newItemDTOs(items []catalogsvc.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, newItemDTO(item))
	}
	return dtos
}

func (req VisibilityRequest) toCriteria() catalogsvc.Criteria {
	return catalogsvc.Criteria{
		Search:          catalogsvc.ResolveSearch(req.HeaderSearch, req.Search),
		RecommendedOnly: req.RecommendedOnly,
		Types:           req.Types,
		Rarities:        req.Rarities,
		SetIDs:          req.SetIDs,
		Language:        req.Language,
		MinPrice:        catalogsvc.ParseMinPrice(req.MinPrice),
		MaxPrice:        catalogsvc.ParseMaxPrice(req.MaxPrice),
	}
}
