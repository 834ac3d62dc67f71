package catalog

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivend/judge/internal/database"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(database.Config{
		Path: filepath.Join(t.TempDir(), "catalog.db"),
		Name: "catalog-test",
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepository_Load_SeedsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db, zerolog.Nop())

	cat, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cat.Len())

	p, ok := cat.ByID(9)
	require.True(t, ok)
	assert.Equal(t, "vita500", p.Name)
	assert.Equal(t, CategoryBeverage, p.Category)
	assert.Equal(t, 130.0, p.UnitWeight)
	assert.Equal(t, 1200, p.UnitPrice)
}

func TestRepository_Load_DoesNotReseed(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db, zerolog.Nop())

	_, err := repo.Load()
	require.NoError(t, err)

	// A local edit must survive subsequent loads.
	_, err = db.Exec("UPDATE products SET unit_price = 9999 WHERE id = 1")
	require.NoError(t, err)

	cat, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cat.Len())

	p, ok := cat.ByID(1)
	require.True(t, ok)
	assert.Equal(t, 9999, p.UnitPrice)
}

func TestRepository_Load_ReadsCustomAssortment(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec(
		"INSERT INTO products (id, name, category, unit_weight_g, unit_price) VALUES (1, 'local_special', 'frozen', 450, 6000)",
	)
	require.NoError(t, err)

	cat, err := NewRepository(db, zerolog.Nop()).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	p, ok := cat.ByName("local_special")
	require.True(t, ok)
	assert.Equal(t, CategoryFrozen, p.Category)
	assert.Equal(t, 0.15, p.Tolerance())
}
