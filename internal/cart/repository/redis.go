package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/pkg/cache"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "cart:"
	cartLockTTL   = 5 * time.Second
	lockAttempts  = 3
	lockBackoff   = 100 * time.Millisecond
)

// RedisStore keeps one hash per session (cart:{sessionID}), each field holding
// a JSON-encoded line. Read-modify-write sequences take a per-session lock.
type RedisStore struct {
	cache *cache.RedisClient
}

func NewRedisStore(c *cache.RedisClient) *RedisStore {
	return &RedisStore{cache: c}
}

func cartKey(sessionID string) string { return cartKeyPrefix + sessionID }

func (s *RedisStore) lockSession(ctx context.Context, sessionID string) (func(), error) {
	lockKey := "lock:" + cartKey(sessionID)
	lockValue := uuid.New().String()

	for i := 0; i < lockAttempts; i++ {
		ok, err := s.cache.AcquireLock(ctx, lockKey, lockValue, cartLockTTL)
		if err != nil {
			return nil, errors.Wrap(err, "cart: acquire session lock")
		}
		if ok {
			return func() { _ = s.cache.ReleaseLock(ctx, lockKey, lockValue) }, nil
		}
		time.Sleep(lockBackoff)
	}
	return nil, errors.New("cart: session busy, try again")
}

// readLines loads and orders the session's lines. Hash fields have no order,
// so lines are sorted by creation time, then id, to keep insertion order.
func (s *RedisStore) readLines(ctx context.Context, sessionID string) ([]*model.CartLine, error) {
	raw, err := s.cache.Client.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "cart: read session")
	}

	lines := make([]*model.CartLine, 0, len(raw))
	for _, data := range raw {
		var line model.CartLine
		if err := json.Unmarshal([]byte(data), &line); err != nil {
			return nil, errors.Wrap(err, "cart: decode line")
		}
		lines = append(lines, &line)
	}
	sortLines(lines)
	return lines, nil
}

func sortLines(lines []*model.CartLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].CreatedAt.Equal(lines[j].CreatedAt) {
			return lines[i].CreatedAt.Before(lines[j].CreatedAt)
		}
		return lines[i].ID < lines[j].ID
	})
}

func (s *RedisStore) writeLine(ctx context.Context, line *model.CartLine) error {
	data, err := json.Marshal(line)
	if err != nil {
		return err
	}
	return errors.Wrap(
		s.cache.Client.HSet(ctx, cartKey(line.SessionID), line.ID, data).Err(),
		"cart: write line",
	)
}

func (s *RedisStore) Lines(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	lines, err := s.readLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, *l)
	}
	return out, nil
}

func (s *RedisStore) AddLine(ctx context.Context, line *model.CartLine) (int, error) {
	unlock, err := s.lockSession(ctx, line.SessionID)
	if err != nil {
		return 0, err
	}
	defer unlock()

	lines, err := s.readLines(ctx, line.SessionID)
	if err != nil {
		return 0, err
	}

	merged := false
	for _, l := range lines {
		if l.ProductID == line.ProductID {
			l.Quantity += line.Quantity
			if err := s.writeLine(ctx, l); err != nil {
				return 0, err
			}
			merged = true
			break
		}
	}
	if !merged {
		if err := s.writeLine(ctx, line); err != nil {
			return 0, err
		}
		lines = append(lines, line)
	}

	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count, nil
}

func (s *RedisStore) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) error {
	unlock, err := s.lockSession(ctx, sessionID)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := s.cache.Client.HGet(ctx, cartKey(sessionID), lineID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrNotFound
		}
		return errors.Wrap(err, "cart: read line")
	}

	if quantity <= 0 {
		return errors.Wrap(s.cache.Client.HDel(ctx, cartKey(sessionID), lineID).Err(), "cart: delete line")
	}

	var line model.CartLine
	if err := json.Unmarshal([]byte(data), &line); err != nil {
		return errors.Wrap(err, "cart: decode line")
	}
	line.Quantity = quantity
	return s.writeLine(ctx, &line)
}

func (s *RedisStore) Remove(ctx context.Context, sessionID, lineID string) error {
	return errors.Wrap(s.cache.Client.HDel(ctx, cartKey(sessionID), lineID).Err(), "cart: remove line")
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return errors.Wrap(s.cache.Client.Del(ctx, cartKey(sessionID)).Err(), "cart: clear session")
}
