package catalog

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aivend/judge/internal/database"
)

// Repository loads the catalog from its SQLite store. The store is
// write-once: it is seeded from the builtin table on first startup and
// read in full afterwards.
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a catalog repository.
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "catalog").Logger(),
	}
}

// Load returns the full catalog from the database, seeding it from the
// builtin table when the products table is empty.
func (r *Repository) Load() (*Catalog, error) {
	count, err := r.count()
	if err != nil {
		return nil, err
	}

	if count == 0 {
		if err := r.seed(Builtin()); err != nil {
			return nil, err
		}
		r.log.Info().Int("products", len(Builtin())).Msg("Seeded empty catalog database from builtin table")
	}

	products, err := r.fetchAll()
	if err != nil {
		return nil, err
	}

	return New(products)
}

func (r *Repository) count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *Repository) seed(products []Product) error {
	return database.WithTransaction(r.db.Conn(), func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(
			"INSERT INTO products (id, name, category, unit_weight_g, unit_price) VALUES (?, ?, ?, ?, ?)",
		)
		if err != nil {
			return fmt.Errorf("failed to prepare product insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range products {
			if _, err := stmt.Exec(p.ID, p.Name, string(p.Category), p.UnitWeight, p.UnitPrice); err != nil {
				return fmt.Errorf("failed to insert product %d (%s): %w", p.ID, p.Name, err)
			}
		}
		return nil
	})
}

func (r *Repository) fetchAll() ([]Product, error) {
	rows, err := r.db.Query(
		"SELECT id, name, category, unit_weight_g, unit_price FROM products ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &category, &p.UnitWeight, &p.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		p.Category = ParseCategory(category)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return products, nil
}
