package catalog

import (
	"fmt"
	"sort"
)

// Catalog is an immutable product lookup built once at startup. All maps
// are populated in New and never written afterwards, so concurrent readers
// need no locking.
type Catalog struct {
	byID   map[int]Product
	byName map[string]Product
	all    []Product // sorted by id, hand entry excluded
}

// New builds a catalog from a product list. The reserved hand entry
// (class 0) is tolerated in the input but excluded from product lookups.
// Duplicate ids or names are rejected: a catalog that silently shadows
// entries would corrupt price totals downstream.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		byID:   make(map[int]Product, len(products)),
		byName: make(map[string]Product, len(products)),
	}

	for _, p := range products {
		if p.ID == HandClassID {
			continue
		}
		if p.ID < 0 {
			return nil, fmt.Errorf("invalid product id %d (%s)", p.ID, p.Name)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("product %d has empty name", p.ID)
		}
		if p.UnitWeight < 0 {
			return nil, fmt.Errorf("product %d (%s) has negative unit weight %.1f", p.ID, p.Name, p.UnitWeight)
		}
		if p.UnitPrice < 0 {
			return nil, fmt.Errorf("product %d (%s) has negative price %d", p.ID, p.Name, p.UnitPrice)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate product name %q", p.Name)
		}

		p.Category = ParseCategory(string(p.Category))
		c.byID[p.ID] = p
		c.byName[p.Name] = p
		c.all = append(c.all, p)
	}

	sort.Slice(c.all, func(i, j int) bool { return c.all[i].ID < c.all[j].ID })

	return c, nil
}

// ByID looks up a product by id.
func (c *Catalog) ByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByName looks up a product by its class name.
func (c *Catalog) ByName(name string) (Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// ToleranceOf returns the fractional weight tolerance for a category.
func (c *Catalog) ToleranceOf(category Category) float64 {
	return category.Tolerance()
}

// All returns every product (hand excluded), ordered by id. The returned
// slice is shared; callers must not mutate it.
func (c *Catalog) All() []Product {
	return c.all
}

// Len returns the number of products (hand excluded).
func (c *Catalog) Len() int {
	return len(c.all)
}
