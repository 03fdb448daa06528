package cart

import (
	"dripstore/internal/catalog"
)

// Ledger is the in-memory cart: an ordered sequence of lines.
// Insertion order matters for display, not for identity. The ledger is
// ephemeral; it resets on checkout or reload.
type Ledger struct {
	lines []Item
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add puts one unit of (product, size, variant) in the cart, merging
// into an existing line when the identity tuple matches. The aggregate
// sold-out gate wins over any per-variant stock.
func (l *Ledger) Add(p catalog.Product, size string, variant *catalog.ProductVariant) (Item, error) {
	if p.SoldOut() {
		return Item{}, ErrOutOfStock
	}
	if !catalog.SizeAvailable(p, variant, size) {
		return Item{}, ErrSizeUnavailable
	}

	variantID, variantName := "", ""
	if variant != nil {
		variantID, variantName = variant.ID, variant.Name
	}

	for i := range l.lines {
		if l.lines[i].matches(p.ID, size, variantID) {
			l.lines[i].Quantity++
			return l.lines[i], nil
		}
	}

	image := ""
	if imgs := catalog.EffectiveImages(p, variant); len(imgs) > 0 {
		image = imgs[0]
	}

	line := Item{
		ProductID:           p.ID,
		Name:                p.Name,
		Brand:               p.Brand,
		Price:               p.Price,
		Image:               image,
		SelectedSize:        size,
		SelectedVariantID:   variantID,
		SelectedVariantName: variantName,
		Quantity:            1,
	}
	l.lines = append(l.lines, line)
	return line, nil
}

// Remove deletes the line matching the identity tuple. It is the only
// way a line leaves the ledger.
func (l *Ledger) Remove(productID, size, variantID string) error {
	for i := range l.lines {
		if l.lines[i].matches(productID, size, variantID) {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// AdjustQuantity applies a delta to the line's quantity, clamped to a
// floor of 1. A delta that would reach zero never deletes the line.
func (l *Ledger) AdjustQuantity(productID, size, variantID string, delta int) (Item, error) {
	for i := range l.lines {
		if l.lines[i].matches(productID, size, variantID) {
			q := l.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			l.lines[i].Quantity = q
			return l.lines[i], nil
		}
	}
	return Item{}, ErrLineNotFound
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []Item {
	return append([]Item(nil), l.lines...)
}

func (l *Ledger) Subtotal() int {
	sum := 0
	for _, line := range l.lines {
		sum += line.LineTotal()
	}
	return sum
}

func (l *Ledger) TotalItemCount() int {
	count := 0
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

func (l *Ledger) Len() int {
	return len(l.lines)
}

func (l *Ledger) Clear() {
	l.lines = nil
}
