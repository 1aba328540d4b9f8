package cart

import (
	cartsvc "github.com/tcgperu/storefront-backend/internal/cart"
)

// LineDTO is the wire shape of a single cart line. Monetary values are
// rendered as fixed two-decimal strings.
type LineDTO struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Details   string `json:"details,omitempty"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// CartResponse is the full cart state returned by every cart mutation.
type CartResponse struct {
	Items     []LineDTO `json:"items"`
	ItemCount int       `json:"item_count"`
	AmountDue string    `json:"amount_due"`
}

// CheckoutResponse carries the composed order message and the
// messaging-channel URL that embeds it.
type CheckoutResponse struct {
	Message    string `json:"message"`
	HandoffURL string `json:"handoff_url"`
}

func newCartResponse(store *cartsvc.Store) CartResponse {
	lines := store.Items()
	dtos := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, LineDTO{
			ItemID:    line.ItemID,
			Name:      line.Name,
			Price:     line.Price.StringFixed(2),
			Image:     line.Image,
			Details:   line.Details,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal().StringFixed(2),
		})
	}

	count, amount := store.Totals()
	return CartResponse{
		Items:     dtos,
		ItemCount: count,
		AmountDue: amount.StringFixed(2),
	}
}
