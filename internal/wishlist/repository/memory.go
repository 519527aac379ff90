package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Heybro1122/ShopHub/internal/catalog"
	"github.com/Heybro1122/ShopHub/internal/model"
)

// MemoryRepository resolves product snapshots through the catalog, mirroring
// the join the Postgres implementation does.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []*model.WishlistEntry
	catalog catalog.Repository
}

func NewMemoryRepository(catalogRepo catalog.Repository) *MemoryRepository {
	return &MemoryRepository{catalog: catalogRepo}
}

func (r *MemoryRepository) List(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	r.mu.RLock()
	var mine []*model.WishlistEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			mine = append(mine, e)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })

	items := make([]model.WishlistItem, 0, len(mine))
	for _, e := range mine {
		product, err := r.catalog.FindByID(ctx, e.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.WishlistItem{WishlistEntry: *e, Product: product})
	}
	return items, nil
}

func (r *MemoryRepository) Find(ctx context.Context, userID, productID string) (*model.WishlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.UserID == userID && e.ProductID == productID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, entry *model.WishlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.UserID == entry.UserID && e.ProductID == entry.ProductID {
			return model.ErrDuplicate
		}
	}
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.UserID == userID && e.ProductID == productID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}
