package store

import (
	"context"
	"sync"
	"time"

	"github.com/portfolioapi/catalog/internal/catalog/errors"
	"github.com/shopspring/decimal"
)

// inMemory implements ProductStore using an in-memory slice.
// A slice is used instead of a map so that "store order" (insertion order)
// is well defined for unsorted listings.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
}

// NewInMemoryStore creates a new instance of ProductStore
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make([]Product, 0),
	}
}

// FindByID retrieves a product by its ID. Soft-deleted records are reported as not found.
func (s *inMemory) FindByID(_ context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id && !p.Deleted {
			return &p, nil
		}
	}
	return nil, errors.ErrProductNotFound
}

// FindAll returns a snapshot copy of every record, soft-deleted ones included.
// Callers that need only active records filter the snapshot themselves.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// Create creates a new product and returns it.
// The ID is assigned as max(existing ids)+1, or 1 for an empty store. Since
// records are never physically removed, max always reflects the highest id
// ever assigned and two records can never collide.
func (s *inMemory) Create(_ context.Context, name string, price decimal.Decimal, category string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	product := Product{
		ID:        s.nextID(),
		Name:      name,
		Price:     price,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.products = append(s.products, product)

	return &product, nil
}

// Update modifies an existing product in place and refreshes its update timestamp.
func (s *inMemory) Update(_ context.Context, id int64, name string, price decimal.Decimal, category string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id && !s.products[i].Deleted {
			s.products[i].Name = name
			s.products[i].Price = price
			s.products[i].Category = category
			s.products[i].UpdatedAt = time.Now().UTC()
			updated := s.products[i]
			return &updated, nil
		}
	}
	return nil, errors.ErrProductNotFound
}

// DeleteByID soft-deletes a product by its ID. The record stays in the store.
func (s *inMemory) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id && !s.products[i].Deleted {
			s.products[i].Deleted = true
			s.products[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return errors.ErrProductNotFound
}

// nextID computes the next identifier. Caller must hold the write lock.
func (s *inMemory) nextID() int64 {
	var maxID int64
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
