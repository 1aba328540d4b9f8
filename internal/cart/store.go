package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Snapshot captures an item's display fields at add time. The cart
// keeps these values even if the catalog entry later changes or
// disappears.
type Snapshot struct {
	ItemID  string
	Name    string
	Price   decimal.Decimal
	Image   string
	Details string
}

// LineItem is one cart entry. Quantity is always >= 1; an entry whose
// quantity would drop to zero or below is removed instead.
type LineItem struct {
	Snapshot
	Quantity int
}

// LineTotal returns price * quantity without display rounding.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Store holds one session's cart lines, keyed by item id with insertion
// order preserved for enumeration. Mutations are serialized so each
// operation completes before the next; the HTTP adapter calls in from
// concurrent goroutines.
type Store struct {
	mu    sync.Mutex
	lines map[string]*LineItem
	order []string
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{lines: make(map[string]*LineItem)}
}

// Add inserts a new line with quantity 1, or increments the quantity
// when the item is already present. The snapshot of an existing line is
// not refreshed. Add never fails.
func (s *Store) Add(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.lines[snap.ItemID]; ok {
		line.Quantity++
		return
	}
	s.lines[snap.ItemID] = &LineItem{Snapshot: snap, Quantity: 1}
	s.order = append(s.order, snap.ItemID)
}

// Remove deletes the line if present; absent ids are a no-op.
func (s *Store) Remove(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(itemID)
}

// ChangeQuantity adjusts the line's quantity by delta. A result of zero
// or below removes the line; an absent id is a no-op.
func (s *Store) ChangeQuantity(itemID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines[itemID]
	if !ok {
		return
	}
	line.Quantity += delta
	if line.Quantity <= 0 {
		s.removeLocked(itemID)
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[string]*LineItem)
	s.order = nil
}

// Items returns the lines in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]LineItem, 0, len(s.order))
	for _, id := range s.order {
		if line, ok := s.lines[id]; ok {
			items = append(items, *line)
		}
	}
	return items
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Totals returns the summed quantity and the amount due rounded to two
// decimal places for display.
func (s *Store) Totals() (int, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemCount := 0
	amountDue := decimal.Zero
	for _, line := range s.lines {
		itemCount += line.Quantity
		amountDue = amountDue.Add(line.LineTotal())
	}
	return itemCount, amountDue.Round(2)
}

func (s *Store) removeLocked(itemID string) {
	if _, ok := s.lines[itemID]; !ok {
		return
	}
	delete(s.lines, itemID)
	for i, id := range s.order {
		if id == itemID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
