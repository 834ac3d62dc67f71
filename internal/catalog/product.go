// Package catalog provides the immutable product catalog the judgment
// pipeline matches detections and weights against.
package catalog

// HandClassID is the reserved detection class for hands. It never appears
// as a sellable product; the vision layer uses it purely for spatial gating.
const HandClassID = 0

// Category groups products for weight-tolerance purposes. The set is
// closed; anything unknown maps to CategoryEtc.
type Category string

const (
	CategoryBeverage Category = "beverage"
	CategorySnack    Category = "snack"
	CategoryCandy    Category = "candy"
	CategoryFood     Category = "food"
	CategoryDairy    Category = "dairy"
	CategoryHealth   Category = "health"
	CategoryFrozen   Category = "frozen"
	CategoryEtc      Category = "etc"
)

// categoryTolerances maps each category to its fractional weight tolerance.
// Frozen goods get the loosest bound because of ice build-up.
var categoryTolerances = map[Category]float64{
	CategoryBeverage: 0.05,
	CategorySnack:    0.10,
	CategoryCandy:    0.10,
	CategoryFood:     0.08,
	CategoryDairy:    0.07,
	CategoryHealth:   0.10,
	CategoryFrozen:   0.15,
	CategoryEtc:      0.15,
}

// ParseCategory normalizes a raw category string. Unknown or empty values
// fall back to CategoryEtc.
func ParseCategory(raw string) Category {
	c := Category(raw)
	if _, ok := categoryTolerances[c]; ok {
		return c
	}
	return CategoryEtc
}

// Tolerance returns the fractional weight tolerance for a category.
func (c Category) Tolerance() float64 {
	if t, ok := categoryTolerances[c]; ok {
		return t
	}
	return categoryTolerances[CategoryEtc]
}

// Product is one catalog entry. Immutable after load.
type Product struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Category   Category `json:"category" yaml:"category"`
	UnitWeight float64  `json:"unit_weight_g" yaml:"weight"` // grams; 0 means weight-unknown
	UnitPrice  int      `json:"unit_price" yaml:"price"`
}

// Tolerance returns the fractional weight tolerance for this product's category.
func (p Product) Tolerance() float64 {
	return p.Category.Tolerance()
}

// HasKnownWeight reports whether the product participates in weight matching.
func (p Product) HasKnownWeight() bool {
	return p.UnitWeight > 0
}
