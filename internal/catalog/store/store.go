// Package store provides an interface for product storage operations.
package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product record in the store.
// Deleted marks the record as soft-deleted: it stays in the store so that
// identifiers and history remain stable, but read and mutate operations
// other than the delete acknowledgment must skip it.
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Category  string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Known product categories. The set is open-ended; CategoryGeneral is the
// fallback applied when a client omits the category.
const (
	CategoryElectronics = "Electronics"
	CategoryAudio       = "Audio"
	CategoryGeneral     = "General"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID or it is soft-deleted.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns a snapshot of all records, including soft-deleted ones.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product to the store, assigning its ID and timestamps.
	// Returns error if the product cannot be created.
	Create(ctx context.Context, name string, price decimal.Decimal, category string) (*Product, error)

	// Update modifies an existing product's name, price and category.
	// Returns ErrProductNotFound if no product exists with the given ID or it is soft-deleted.
	Update(ctx context.Context, id int64, name string, price decimal.Decimal, category string) (*Product, error)

	// DeleteByID soft-deletes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID or it is already soft-deleted.
	DeleteByID(ctx context.Context, id int64) error
}
