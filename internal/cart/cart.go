// Package cart implements the in-progress order state container: a
// mapping from product name to desired quantity. Every mutation returns
// a fresh snapshot so observers can diff by reference; the receiver is
// never modified.
package cart

import "github.com/viscontie/junk-mail-service/internal/model"

// Cart maps product name to a positive quantity. An entry with quantity
// <= 0 never exists; removal deletes the key.
type Cart map[string]int

// New returns an empty cart.
func New() Cart { return Cart{} }

func (c Cart) clone() Cart {
	out := make(Cart, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Add increments the quantity for name by one, initializing to 1 if the
// item is absent.
func (c Cart) Add(name string) Cart {
	out := c.clone()
	out[name]++
	return out
}

// SetQuantity sets the quantity for name directly. qty <= 0 removes the
// entry. No upper bound is enforced here; clamping against the product
// limit is the caller's policy (see Adjust).
func (c Cart) SetQuantity(name string, qty int) Cart {
	out := c.clone()
	if qty <= 0 {
		delete(out, name)
	} else {
		out[name] = qty
	}
	return out
}

// Remove deletes the entry for name unconditionally.
func (c Cart) Remove(name string) Cart {
	out := c.clone()
	delete(out, name)
	return out
}

// Clear empties the cart.
func (c Cart) Clear() Cart { return Cart{} }

// ReplaceAll swaps in a whole new mapping, copying it so the result does
// not alias the argument.
func (c Cart) ReplaceAll(next Cart) Cart { return next.clone() }

// Quantity returns the current quantity for name, zero if absent.
func (c Cart) Quantity(name string) int { return c[name] }

// Empty reports whether the cart holds no items.
func (c Cart) Empty() bool { return len(c) == 0 }

// Items flattens the cart into order line items. Iteration order of the
// underlying map is not contractually sorted; consumers that need a
// stable order must sort.
func (c Cart) Items() []model.OrderItem {
	if len(c) == 0 {
		return nil
	}
	items := make([]model.OrderItem, 0, len(c))
	for name, qty := range c {
		items = append(items, model.OrderItem{Name: name, Qty: qty})
	}
	return items
}

// FromOrder rebuilds a cart from a previously placed order, for the
// reorder flow.
func FromOrder(o model.Order) Cart {
	out := make(Cart, len(o.Items))
	for _, it := range o.Items {
		if it.Qty > 0 {
			out[it.Name] = it.Qty
		}
	}
	return out
}
