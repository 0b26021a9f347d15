package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/portfolioapi/catalog/internal/catalog/store"
	"github.com/shopspring/decimal"
)

// Sort keys recognized by the query pipeline. Any other value leaves the
// snapshot in store order.
const (
	SortByPrice = "price"
	SortByName  = "name"
)

// ProductQuery carries the listing parameters. MinPrice and MaxPrice are
// pointers so that an absent bound is distinguishable from a zero bound.
type ProductQuery struct {
	Search   string
	SortBy   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Skip     int
	Take     int
}

// ProductPage is a bounded slice of the filtered result set. TotalCount is the
// size of the filtered set before pagination, enabling client-side page math.
type ProductPage struct {
	TotalCount int          `json:"totalCount"`
	Skip       int          `json:"skip"`
	Take       int          `json:"take"`
	Data       []ProductDto `json:"data"`
}

// Query runs the listing pipeline over a snapshot of the store:
// soft-deleted records are excluded, then search/category/price filters are
// applied, then the sort, and finally the skip/take slice. Each stage is a
// pass-through when its parameter is absent.
func (s *Service) Query(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	filtered := make([]store.Product, 0, len(products))
	for _, p := range products {
		if matches(p, query) {
			filtered = append(filtered, p)
		}
	}

	switch query.SortBy {
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}

	page := &ProductPage{
		TotalCount: len(filtered),
		Skip:       query.Skip,
		Take:       query.Take,
	}

	start := min(query.Skip, len(filtered))
	end := min(start+query.Take, len(filtered))
	page.Data = make([]ProductDto, 0, end-start)
	for _, p := range filtered[start:end] {
		page.Data = append(page.Data, *toDto(&p))
	}
	return page, nil
}

// matches reports whether an active product survives the filter stages.
func matches(p store.Product, query ProductQuery) bool {
	if p.Deleted {
		return false
	}
	if query.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(query.Search)) {
		return false
	}
	if query.Category != "" && !strings.EqualFold(p.Category, query.Category) {
		return false
	}
	if query.MinPrice != nil && p.Price.LessThan(*query.MinPrice) {
		return false
	}
	if query.MaxPrice != nil && p.Price.GreaterThan(*query.MaxPrice) {
		return false
	}
	return true
}
