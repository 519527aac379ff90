package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Heybro1122/ShopHub/internal/model"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	users []*model.User
}

func NewMemoryRepository() *MemoryRepository {
	return NewMemoryRepositoryWith(Fixtures())
}

func NewMemoryRepositoryWith(users []*model.User) *MemoryRepository {
	return &MemoryRepository{users: users}
}

// Fixtures seeds the memory backend with one admin and a few customers.
func Fixtures() []*model.User {
	created := time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC)
	return []*model.User{
		{ID: "admin-1", Name: "Avery Stone", Email: "avery@shophub.dev", Role: model.RoleAdmin, CreatedAt: created},
		{ID: "user-1", Name: "Jordan Blake", Email: "jordan@example.com", Role: model.RoleCustomer, CreatedAt: created},
		{ID: "user-2", Name: "Sam Carter", Email: "sam@example.com", Role: model.RoleCustomer, CreatedAt: created},
		{ID: "user-3", Name: "Riley Quinn", Email: "riley@example.com", Role: model.RoleCustomer, CreatedAt: created},
	}
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
