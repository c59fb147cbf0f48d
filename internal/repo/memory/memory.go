package memory

import (
	"context"
	"sync"

	"github.com/hamed0406/healthpoint/internal/domain"
)

const defaultCapacity = 20

// Store keeps the most recent rounds in a bounded in-process buffer.
// Nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	rounds   []*domain.Round
	capacity int
}

func New(capacity int) *Store {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	return &Store{
		rounds:   make([]*domain.Round, 0, capacity),
		capacity: capacity,
	}
}

func (m *Store) SaveRound(ctx context.Context, r *domain.Round) error {
	cp := *r
	cp.Statuses = append([]domain.Status(nil), r.Statuses...)

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rounds) == m.capacity {
		copy(m.rounds, m.rounds[1:])
		m.rounds = m.rounds[:len(m.rounds)-1]
	}
	m.rounds = append(m.rounds, &cp)
	return nil
}

func (m *Store) LastRound(ctx context.Context) (*domain.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.rounds) == 0 {
		return nil, nil
	}
	return m.rounds[len(m.rounds)-1], nil
}

func (m *Store) Rounds(ctx context.Context, limit int) ([]*domain.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 || limit > len(m.rounds) {
		limit = len(m.rounds)
	}
	out := make([]*domain.Round, 0, limit)
	for i := len(m.rounds) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.rounds[i])
	}
	return out, nil
}
