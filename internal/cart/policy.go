package cart

import "github.com/viscontie/junk-mail-service/internal/catalog"

// Adjust applies the tile counter policy for a +1/-1 delta against the
// product's per-order limit: a result <= 0 removes the item, a result
// above the limit is rejected silently, anything else is applied.
// The returned bool reports whether the cart changed.
func Adjust(c Cart, name string, delta int) (Cart, bool) {
	limit := catalog.LimitFor(name)
	next := c.Quantity(name) + delta
	switch {
	case next <= 0:
		if c.Quantity(name) == 0 {
			return c, false
		}
		return c.Remove(name), true
	case next > limit:
		return c, false
	default:
		return c.SetQuantity(name, next), true
	}
}
