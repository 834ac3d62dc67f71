package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFile mirrors the catalog file layout: either a top-level `classes:`
// list or a bare list of products.
type yamlFile struct {
	Classes []yamlProduct `yaml:"classes"`
}

type yamlProduct struct {
	ID       int     `yaml:"id"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Weight   float64 `yaml:"weight"`
	Price    int     `yaml:"price"`
}

// LoadYAML builds a catalog from a YAML product file. Missing categories
// fall back to etc; the reserved hand entry may be present and is skipped.
func LoadYAML(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file yamlFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	entries := file.Classes
	if len(entries) == 0 {
		// Bare list form
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	products := make([]Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, Product{
			ID:         e.ID,
			Name:       e.Name,
			Category:   ParseCategory(e.Category),
			UnitWeight: e.Weight,
			UnitPrice:  e.Price,
		})
	}

	return New(products)
}
