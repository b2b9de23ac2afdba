package catalog

import "testing"

func TestLookupKnownProduct(t *testing.T) {
	p, ok := Lookup("Plan B")
	if !ok {
		t.Fatalf("Plan B missing from catalog")
	}
	if p.Category != CategoryEmergency {
		t.Fatalf("unexpected category: %s", p.Category)
	}
}

func TestLimits(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Plan B", 3},
		{"Menstrual Cup (Mini)", 1},
		{"Menstrual Cup (A)", 1},
		{"Menstrual Disc", 1},
		{"Lubricant", DefaultLimit},
		{"no such product", DefaultLimit},
	}
	for _, c := range cases {
		if got := LimitFor(c.name); got != c.want {
			t.Fatalf("LimitFor(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestByCategoryCoversCatalog(t *testing.T) {
	total := len(ByCategory(CategoryMenstrual)) +
		len(ByCategory(CategorySaferSex)) +
		len(ByCategory(CategoryEmergency))
	if total != len(Products()) {
		t.Fatalf("categories cover %d products, catalog has %d", total, len(Products()))
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	a := Products()
	a[0].Name = "mutated"
	b := Products()
	if b[0].Name == "mutated" {
		t.Fatalf("Products must not expose internal slice")
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Products() {
		if seen[p.Name] {
			t.Fatalf("duplicate product name %q", p.Name)
		}
		seen[p.Name] = true
	}
}
