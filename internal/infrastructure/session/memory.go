package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

type memoryEntry struct {
	raw     []byte
	expires time.Time
}

// MemoryCartStore is an in-process CartStore with the same expiry semantics
// as the Redis implementation. Intended for tests and local development
// without a Redis instance.
type MemoryCartStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &MemoryCartStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryCartStore) Get(_ context.Context, sessionID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok || s.now().After(entry.expires) {
		delete(s.entries, sessionID)
		return nil, domain.ErrCartNotFound
	}

	var draft domain.Order
	if err := json.Unmarshal(entry.raw, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *MemoryCartStore) Put(_ context.Context, sessionID string, draft *domain.Order) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{raw: raw, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}
