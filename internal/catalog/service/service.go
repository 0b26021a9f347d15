// Package service provides the implementation of catalog business logic.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/portfolioapi/catalog/internal/catalog/store"
	"github.com/shopspring/decimal"
)

// CatalogService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no active product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// Query applies filtering, sorting and pagination to the active products
	// and returns the resulting page.
	Query(ctx context.Context, query ProductQuery) (*ProductPage, error)

	// Create adds a new product to the catalog. A blank category is defaulted
	// to "General". Returns error if the product cannot be created.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update modifies an existing product's details.
	// Returns ErrProductNotFound if no active product exists with the given ID.
	Update(ctx context.Context, id int64, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID soft-deletes a product by its ID.
	// Returns ErrProductNotFound if no active product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// Stats returns aggregate counts and price statistics for the catalog.
	Stats(ctx context.Context) (*CatalogStatsDto, error)
}

// Service implements CatalogService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Field order matters for validation reporting: the name check precedes the price check.
type ProductCreateDto struct {
	Name     string          `json:"name"     validate:"notblank,max=100"`
	Price    decimal.Decimal `json:"price"    validate:"gt=0"`
	Category string          `json:"category" validate:"omitempty,max=50"`
}

// ProductUpdateDto represents the data transfer object for updating a product.
type ProductUpdateDto struct {
	Name     string          `json:"name"     validate:"notblank,max=100"`
	Price    decimal.Decimal `json:"price"    validate:"gt=0"`
	Category string          `json:"category" validate:"omitempty,max=50"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

// CatalogStatsDto represents aggregate statistics over the catalog.
// Price statistics cover active (non-deleted) products only and are rounded
// to two decimal places; they are zero when no active products exist.
type CatalogStatsDto struct {
	TotalProducts   int             `json:"totalProducts"`
	ActiveProducts  int             `json:"activeProducts"`
	DeletedProducts int             `json:"deletedProducts"`
	MinPrice        decimal.Decimal `json:"minPrice"`
	MaxPrice        decimal.Decimal `json:"maxPrice"`
	AveragePrice    decimal.Decimal `json:"averagePrice"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no active product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// Create creates a new product and returns it as a ProductDto.
// A blank or whitespace category falls back to the General category.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	category := strings.TrimSpace(product.Category)
	if category == "" {
		category = store.CategoryGeneral
	}
	p, err := s.repository.Create(ctx, product.Name, product.Price, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// Update modifies an existing product's details and returns the updated product as a ProductDto.
// Returns ErrProductNotFound if no active product exists with the given ID.
func (s *Service) Update(ctx context.Context, id int64, product ProductUpdateDto) (*ProductDto, error) {
	category := strings.TrimSpace(product.Category)
	if category == "" {
		category = store.CategoryGeneral
	}
	updated, err := s.repository.Update(ctx, id, product.Name, product.Price, category)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	return toDto(updated), nil
}

// DeleteByID soft-deletes a product by its ID.
// Returns ErrProductNotFound if no active product exists with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repository.DeleteByID(ctx, id)
}

// Stats computes aggregate counts and min/max/average price over active products.
func (s *Service) Stats(ctx context.Context) (*CatalogStatsDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	stats := &CatalogStatsDto{TotalProducts: len(products)}
	sum := decimal.Zero
	for _, p := range products {
		if p.Deleted {
			stats.DeletedProducts++
			continue
		}
		if stats.ActiveProducts == 0 {
			stats.MinPrice = p.Price
			stats.MaxPrice = p.Price
		} else {
			if p.Price.LessThan(stats.MinPrice) {
				stats.MinPrice = p.Price
			}
			if p.Price.GreaterThan(stats.MaxPrice) {
				stats.MaxPrice = p.Price
			}
		}
		sum = sum.Add(p.Price)
		stats.ActiveProducts++
	}
	if stats.ActiveProducts > 0 {
		stats.AveragePrice = sum.Div(decimal.NewFromInt(int64(stats.ActiveProducts))).Round(2)
		stats.MinPrice = stats.MinPrice.Round(2)
		stats.MaxPrice = stats.MaxPrice.Round(2)
	}
	return stats, nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		CreatedAt: product.CreatedAt.Format(time.RFC3339),
		UpdatedAt: product.UpdatedAt.Format(time.RFC3339),
	}
}
