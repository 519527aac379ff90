package repository

import (
	"context"
	"sync"

	"github.com/Heybro1122/ShopHub/internal/model"
)

// MemoryStore keeps carts in process, one bucket per session. The outer map is
// guarded by its own lock; each session bucket has a dedicated mutex so
// concurrent mutations of one session serialize without blocking others.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionCart
}

type sessionCart struct {
	mu    sync.Mutex
	lines []*model.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*sessionCart)}
}

func (s *MemoryStore) session(id string) *sessionCart {
	s.mu.RLock()
	sc, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sc
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sc, ok = s.sessions[id]; !ok {
		sc = &sessionCart{}
		s.sessions[id] = sc
	}
	return sc
}

func (s *MemoryStore) Lines(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	sc := s.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()

	out := make([]model.CartLine, 0, len(sc.lines))
	for _, l := range sc.lines {
		out = append(out, *l)
	}
	return out, nil
}

func (s *MemoryStore) AddLine(ctx context.Context, line *model.CartLine) (int, error) {
	sc := s.session(line.SessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()

	merged := false
	for _, l := range sc.lines {
		if l.ProductID == line.ProductID {
			// Existing line keeps its original snapshot.
			l.Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cp := *line
		sc.lines = append(sc.lines, &cp)
	}

	count := 0
	for _, l := range sc.lines {
		count += l.Quantity
	}
	return count, nil
}

func (s *MemoryStore) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) error {
	sc := s.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()

	for i, l := range sc.lines {
		if l.ID == lineID {
			if quantity <= 0 {
				sc.lines = append(sc.lines[:i], sc.lines[i+1:]...)
			} else {
				l.Quantity = quantity
			}
			return nil
		}
	}
	return model.ErrNotFound
}

func (s *MemoryStore) Remove(ctx context.Context, sessionID, lineID string) error {
	sc := s.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()

	for i, l := range sc.lines {
		if l.ID == lineID {
			sc.lines = append(sc.lines[:i], sc.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	sc := s.session(sessionID)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.lines = nil
	return nil
}
