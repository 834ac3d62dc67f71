package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	cat, err := New(Builtin())
	require.NoError(t, err)

	assert.Equal(t, 50, cat.Len())

	p, ok := cat.ByID(26)
	require.True(t, ok)
	assert.Equal(t, "chickenmayo_rice", p.Name)
	assert.Equal(t, CategoryFood, p.Category)
	assert.Equal(t, 365.0, p.UnitWeight)
	assert.Equal(t, 3500, p.UnitPrice)

	p, ok = cat.ByName("vita500")
	require.True(t, ok)
	assert.Equal(t, 9, p.ID)

	_, ok = cat.ByID(999)
	assert.False(t, ok)
}

func TestNew_ExcludesHandEntry(t *testing.T) {
	cat, err := New([]Product{
		{ID: HandClassID, Name: "hand"},
		{ID: 1, Name: "water", Category: CategoryBeverage, UnitWeight: 500, UnitPrice: 1000},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, cat.Len())
	_, ok := cat.ByID(HandClassID)
	assert.False(t, ok)
}

func TestNew_RejectsInvalidProducts(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		errMsg   string
	}{
		{
			name: "duplicate id",
			products: []Product{
				{ID: 1, Name: "a", UnitWeight: 10, UnitPrice: 100},
				{ID: 1, Name: "b", UnitWeight: 10, UnitPrice: 100},
			},
			errMsg: "duplicate product id",
		},
		{
			name: "duplicate name",
			products: []Product{
				{ID: 1, Name: "a", UnitWeight: 10, UnitPrice: 100},
				{ID: 2, Name: "a", UnitWeight: 10, UnitPrice: 100},
			},
			errMsg: "duplicate product name",
		},
		{
			name:     "empty name",
			products: []Product{{ID: 1, Name: "", UnitWeight: 10, UnitPrice: 100}},
			errMsg:   "empty name",
		},
		{
			name:     "negative weight",
			products: []Product{{ID: 1, Name: "a", UnitWeight: -5, UnitPrice: 100}},
			errMsg:   "negative unit weight",
		},
		{
			name:     "negative price",
			products: []Product{{ID: 1, Name: "a", UnitWeight: 10, UnitPrice: -1}},
			errMsg:   "negative price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAll_SortedByID(t *testing.T) {
	cat, err := New([]Product{
		{ID: 3, Name: "c", UnitWeight: 10, UnitPrice: 100},
		{ID: 1, Name: "a", UnitWeight: 10, UnitPrice: 100},
		{ID: 2, Name: "b", UnitWeight: 10, UnitPrice: 100},
	})
	require.NoError(t, err)

	all := cat.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestCategoryTolerances(t *testing.T) {
	assert.Equal(t, 0.05, CategoryBeverage.Tolerance())
	assert.Equal(t, 0.10, CategorySnack.Tolerance())
	assert.Equal(t, 0.10, CategoryCandy.Tolerance())
	assert.Equal(t, 0.08, CategoryFood.Tolerance())
	assert.Equal(t, 0.07, CategoryDairy.Tolerance())
	assert.Equal(t, 0.10, CategoryHealth.Tolerance())
	assert.Equal(t, 0.15, CategoryFrozen.Tolerance())
	assert.Equal(t, 0.15, CategoryEtc.Tolerance())
}

func TestParseCategory_UnknownFallsBackToEtc(t *testing.T) {
	assert.Equal(t, CategoryEtc, ParseCategory("weird"))
	assert.Equal(t, CategoryEtc, ParseCategory(""))
	assert.Equal(t, CategoryDairy, ParseCategory("dairy"))
}

func TestProduct_HasKnownWeight(t *testing.T) {
	assert.True(t, Product{UnitWeight: 10}.HasKnownWeight())
	assert.False(t, Product{UnitWeight: 0}.HasKnownWeight())
}
