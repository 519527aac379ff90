package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Heybro1122/ShopHub/internal/catalog/dto"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MemoryRepository keeps the catalog in process. It is the reference
// implementation of the filter/sort/pagination semantics; the Postgres
// repository must produce the same result sets.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []*model.Product
	collator *collate.Collator
}

func NewMemoryRepository() *MemoryRepository {
	return NewMemoryRepositoryWith(Fixtures())
}

func NewMemoryRepositoryWith(products []*model.Product) *MemoryRepository {
	return &MemoryRepository{
		products: products,
		collator: collate.New(language.English),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindRelated(ctx context.Context, category, excludeID string, limit int) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Product
	for _, p := range r.products {
		if p.Category == category && p.ID != excludeID {
			out = append(out, *p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.ListFilters) ([]model.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category := strings.ToLower(f.Category)
	query := strings.ToLower(f.Search)

	filtered := make([]*model.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && category != "all" && strings.ToLower(p.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		filtered = append(filtered, p)
	}

	r.sortProducts(filtered, f.Sort)
	total := len(filtered)
	return copyPage(filtered, f.Page, f.Limit), total, nil
}

func (r *MemoryRepository) Search(ctx context.Context, f *dto.SearchFilters) ([]model.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(f.Query)
	categories := make(map[string]bool, len(f.Categories))
	for _, c := range f.Categories {
		categories[strings.ToLower(c)] = true
	}

	filtered := make([]*model.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Status != model.ProductActive {
			continue
		}
		if p.Price < f.MinPrice || p.Price > f.MaxPrice {
			continue
		}
		if p.Rating < f.MinRating {
			continue
		}
		if f.InStock && p.Stock <= 0 {
			continue
		}
		if len(categories) > 0 && !categories[strings.ToLower(p.Category)] {
			continue
		}
		if query != "" && !matchesText(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	r.sortProducts(filtered, f.SortBy)
	total := len(filtered)
	return copyPage(filtered, f.Page, f.Limit), total, nil
}

// matchesText reports whether query (already lowercased) is a substring of the
// name or description, or equals one of the tags.
func matchesText(p *model.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.EqualFold(tag, query) {
			return true
		}
	}
	return false
}

// sortProducts orders in place. All sorts are stable; ties keep input order.
func (r *MemoryRepository) sortProducts(products []*model.Product, key string) {
	switch key {
	case dto.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case dto.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case dto.SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return r.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case dto.SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	case dto.SortBestselling:
		sort.SliceStable(products, func(i, j int) bool { return products[i].SalesCount > products[j].SalesCount })
	case dto.SortRating, dto.SortRelevance:
		// Relevance is an alias for rating-descending; no text scoring is done.
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	default:
		if key != "" {
			sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
		}
	}
}

// copyPage returns the 1-indexed page slice as value copies.
func copyPage(products []*model.Product, page, limit int) []model.Product {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	start := (page - 1) * limit
	if start >= len(products) {
		return []model.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	out := make([]model.Product, 0, end-start)
	for _, p := range products[start:end] {
		out = append(out, *p)
	}
	return out
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

func (r *MemoryRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int)
	for _, p := range r.products {
		if p.Status == model.ProductActive {
			counts[p.Category]++
		}
	}
	return counts, nil
}

func (r *MemoryRepository) TopBySales(ctx context.Context, limit int) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sorted := make([]*model.Product, len(r.products))
	copy(sorted, r.products)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SalesCount > sorted[j].SalesCount })
	if limit > len(sorted) {
		limit = len(sorted)
	}
	out := make([]model.Product, 0, limit)
	for _, p := range sorted[:limit] {
		out = append(out, *p)
	}
	return out, nil
}

func (r *MemoryRepository) AdjustStock(ctx context.Context, productID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == productID {
			if p.Stock+delta < 0 {
				return errors.Errorf("insufficient stock for product %s", productID)
			}
			p.Stock += delta
			return nil
		}
	}
	return model.ErrNotFound
}

func (r *MemoryRepository) IncrementSales(ctx context.Context, productID string, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == productID {
			p.SalesCount += n
			return nil
		}
	}
	return model.ErrNotFound
}
