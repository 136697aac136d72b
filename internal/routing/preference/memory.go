package preference

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore implements Store with an in-process map
type MemoryStore struct {
	logger *zap.Logger
	mu     sync.RWMutex
	slots  map[uint]uint
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory preference store
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		logger: logger.Named("preference.store.memory"),
		slots:  make(map[uint]uint),
	}
}

func (s *MemoryStore) Save(_ context.Context, principalID uint, companyID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[principalID] = companyID
	return nil
}

func (s *MemoryStore) Load(_ context.Context, principalID uint) (uint, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.slots[principalID]
	return id, ok, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
