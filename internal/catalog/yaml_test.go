package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML_ClassesForm(t *testing.T) {
	path := writeCatalogFile(t, `
classes:
  - id: 1
    name: spring_water
    category: beverage
    weight: 520
    price: 1200
  - id: 2
    name: choco_bar
    category: candy
    weight: 45
    price: 1500
`)

	cat, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	p, ok := cat.ByName("spring_water")
	require.True(t, ok)
	assert.Equal(t, CategoryBeverage, p.Category)
	assert.Equal(t, 520.0, p.UnitWeight)
}

func TestLoadYAML_BareListForm(t *testing.T) {
	path := writeCatalogFile(t, `
- id: 1
  name: spring_water
  category: beverage
  weight: 520
  price: 1200
`)

	cat, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestLoadYAML_UnknownCategoryFallsBack(t *testing.T) {
	path := writeCatalogFile(t, `
classes:
  - id: 1
    name: mystery_item
    category: gadgets
    weight: 100
    price: 500
`)

	cat, err := LoadYAML(path)
	require.NoError(t, err)

	p, ok := cat.ByID(1)
	require.True(t, ok)
	assert.Equal(t, CategoryEtc, p.Category)
}

func TestLoadYAML_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := LoadYAML(writeCatalogFile(t, ""))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadYAML(writeCatalogFile(t, "classes: [unterminated"))
		assert.Error(t, err)
	})
}
