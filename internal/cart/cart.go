package cart

import "sync"

// Cart aggregates line items for one session. Line items are unique per
// (productId, variant): adding an existing key increments its quantity.
// Quantity updates and removals key on productId alone, matching the
// storefront's top-level cart behavior.
//
// All methods are safe for concurrent use; each session owns its own Cart,
// so there is no cross-session contention.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add merges qty into an existing line item with the same
// (productId, variant) key, or appends a new one preserving insertion
// order. A qty below 1 is clamped to 1.
func (c *Cart) Add(item LineItem, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID && c.items[i].Variant == item.Variant {
			c.items[i].Quantity += qty
			return
		}
	}

	item.Quantity = qty
	c.items = append(c.items, item)
}

// UpdateQuantity sets the quantity of every line item with the given
// product id. A quantity below 1 returns ErrInvalidQuantity without
// mutating anything; it never auto-removes the item.
func (c *Cart) UpdateQuantity(productID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
		}
	}
	return nil
}

// Remove deletes every line item with the given product id. Removing an
// unknown id is a no-op.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Total returns the sum of price times quantity over all line items.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Items returns a snapshot copy of the line items in insertion order.
// Later mutations never alias the returned slice.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]LineItem(nil), c.items...)
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Clear empties the cart. Wired to checkout completion and session reset.
// Clearing an already empty cart returns ErrCartEmpty.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return ErrCartEmpty
	}
	c.items = nil
	return nil
}
