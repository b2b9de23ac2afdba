// Package catalog holds the immutable product list the service sells.
// Products are defined at process start and never change at runtime.
package catalog

// Category groups products for the browse filter.
type Category string

const (
	CategoryMenstrual Category = "Menstrual"
	CategorySaferSex  Category = "Safer Sex"
	CategoryEmergency Category = "Emergency Contraception"
)

// DefaultLimit is the per-order quantity cap applied to any product
// without an explicit limit of its own.
const DefaultLimit = 10

// Product is one purchasable item. Name doubles as the identifier.
type Product struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	// Specs are descriptive lines shown on the product tile. Entries may
	// embed a markdown-style link.
	Specs []string `json:"specs"`
	// Limit is the per-order quantity cap; zero means DefaultLimit.
	Limit int `json:"limit,omitempty"`
}

// EffectiveLimit resolves the product's quantity cap.
func (p Product) EffectiveLimit() int {
	if p.Limit > 0 {
		return p.Limit
	}
	return DefaultLimit
}

// Products returns the full catalog in display order. The returned slice
// is a copy; callers may reorder it freely.
func Products() []Product {
	out := make([]Product, len(items))
	copy(out, items)
	return out
}

// ByCategory returns the catalog filtered to one category, preserving
// display order.
func ByCategory(c Category) []Product {
	var out []Product
	for _, p := range items {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// Lookup finds a product by name.
func Lookup(name string) (Product, bool) {
	p, ok := index[name]
	return p, ok
}

// LimitFor returns the quantity cap for a product name. Unknown names
// get the default limit so callers never divide the flow on a miss.
func LimitFor(name string) int {
	if p, ok := index[name]; ok {
		return p.EffectiveLimit()
	}
	return DefaultLimit
}

var index = func() map[string]Product {
	m := make(map[string]Product, len(items))
	for _, p := range items {
		m[p.Name] = p
	}
	return m
}()
