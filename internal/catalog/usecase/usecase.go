package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Heybro1122/ShopHub/internal/catalog"
	"github.com/Heybro1122/ShopHub/internal/catalog/dto"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/pkg/cache"
	"github.com/Heybro1122/ShopHub/pkg/logger"
	"github.com/Heybro1122/ShopHub/pkg/search"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	productIndex    = "products"
	relatedLimit    = 4
	listCacheTTL    = 5 * time.Minute
	listCachePrefix = "products:list:"
)

type productUseCase struct {
	repo   catalog.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

// NewProductUseCase wires the catalog flows. cache and es may be nil; both are
// optional accelerators over the repository.
func NewProductUseCase(repo catalog.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) catalog.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ListFilters) (*dto.ListResult, error) {
	// 1. Check cache
	cacheKey := listCacheKey(filters)
	if uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result dto.ListResult
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return &result, nil
			}
		}
	}

	// 2. Query the store
	products, total, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	result := &dto.ListResult{
		Products: products,
		Pagination: dto.Pagination{
			Page:  filters.Page,
			Limit: filters.Limit,
			Total: total,
			Pages: dto.TotalPages(total, filters.Limit),
		},
		Categories: model.Categories,
	}

	// 3. Set cache
	if uc.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return result, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, []model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, model.ErrNotFound
	}

	related, err := uc.repo.FindRelated(ctx, p.Category, p.ID, relatedLimit)
	if err != nil {
		return nil, nil, err
	}
	return p, related, nil
}

func (uc *productUseCase) SearchProducts(ctx context.Context, filters *dto.SearchFilters) (*dto.SearchResult, error) {
	// A blank query matches nothing on the search path. The listing path is
	// the one where blank means "everything".
	if strings.TrimSpace(filters.Query) == "" {
		return &dto.SearchResult{Products: []model.Product{}, Total: 0, Page: 1, Pages: 0, HasMore: false}, nil
	}

	// 1. Try Elasticsearch
	if uc.es != nil {
		products, total, err := uc.searchElastic(ctx, filters)
		if err == nil {
			return buildSearchResult(products, total, filters), nil
		}
		// If ES fails, fall through to the store
		uc.logger.Error("ES search failed, falling back to store", zap.Error(err))
	}

	// 2. Store query builder
	products, total, err := uc.repo.Search(ctx, filters)
	if err != nil {
		return nil, err
	}
	return buildSearchResult(products, total, filters), nil
}

func buildSearchResult(products []model.Product, total int, filters *dto.SearchFilters) *dto.SearchResult {
	pages := dto.TotalPages(total, filters.Limit)
	if products == nil {
		products = []model.Product{}
	}
	return &dto.SearchResult{
		Products: products,
		Total:    total,
		Page:     filters.Page,
		Pages:    pages,
		HasMore:  filters.Page < pages,
	}
}

func (uc *productUseCase) searchElastic(ctx context.Context, f *dto.SearchFilters) ([]model.Product, int, error) {
	must := []map[string]interface{}{
		{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", f.Query),
				"fields": []string{"name^3", "description", "tags"},
			},
		},
		{"term": map[string]interface{}{"status": "active"}},
		{"range": map[string]interface{}{"price": map[string]interface{}{"gte": f.MinPrice, "lte": f.MaxPrice}}},
		{"range": map[string]interface{}{"rating": map[string]interface{}{"gte": f.MinRating}}},
	}
	if f.InStock {
		must = append(must, map[string]interface{}{"range": map[string]interface{}{"stock": map[string]interface{}{"gt": 0}}})
	}
	if len(f.Categories) > 0 {
		must = append(must, map[string]interface{}{"terms": map[string]interface{}{"category": f.Categories}})
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	q := map[string]interface{}{
		"query": map[string]interface{}{"bool": map[string]interface{}{"must": must}},
		"from":  (page - 1) * f.Limit,
		"sort":  elasticSort(f.SortBy),
	}
	if f.Limit > 0 {
		q["size"] = f.Limit
	}

	res, err := uc.es.Search(ctx, productIndex, q)
	if err != nil {
		return nil, 0, err
	}

	products := make([]model.Product, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			products = append(products, p)
		}
	}
	return products, res.Hits.Total.Value, nil
}

func elasticSort(key string) []map[string]interface{} {
	field, order := "rating", "desc"
	switch key {
	case dto.SortPriceLow:
		field, order = "price", "asc"
	case dto.SortPriceHigh:
		field, order = "price", "desc"
	case dto.SortName:
		field, order = "name.keyword", "asc"
	case dto.SortNewest:
		field, order = "createdAt", "desc"
	case dto.SortBestselling:
		field, order = "salesCount", "desc"
	}
	return []map[string]interface{}{{field: map[string]interface{}{"order": order}}}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	now := time.Now()
	p := &model.Product{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Rating:       0,
		ReviewsCount: 0,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
		Stock:        input.Stock,
		Features:     input.Features,
		Tags:         input.Tags,
		Status:       model.ProductActive,
	}
	if input.OriginalPrice > 0 {
		op := input.OriginalPrice
		p.OriginalPrice = &op
	}
	if input.Badge != "" {
		b := input.Badge
		p.Badge = &b
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	// Invalidate cache
	go uc.invalidateListCache(context.Background())

	// Sync to Elastic
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func listCacheKey(filters *dto.ListFilters) string {
	data, _ := json.Marshal(filters)
	return fmt.Sprintf("%s%x", listCachePrefix, md5.Sum(data))
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, listCachePrefix+"*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text", "fields": { "keyword": { "type": "keyword" } } },
				"description": { "type": "text" },
				"tags": { "type": "keyword" },
				"category": { "type": "keyword" },
				"status": { "type": "keyword" },
				"price": { "type": "double" },
				"rating": { "type": "double" },
				"stock": { "type": "integer" },
				"salesCount": { "type": "integer" },
				"createdAt": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}
