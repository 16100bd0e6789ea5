package reminders

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bwise1/georemind/internal/model"
	"github.com/google/uuid"
)

// MemoryStore is a mutex-guarded in-memory Store. It backs tests and
// single-node deployments that run without Postgres.
type MemoryStore struct {
	mu        sync.RWMutex
	reminders map[string]model.Reminder
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reminders: make(map[string]model.Reminder)}
}

func (s *MemoryStore) GetAll(_ context.Context, userID uuid.UUID) ([]model.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []model.Reminder{}
	for _, reminder := range s.reminders {
		if reminder.UserID == userID {
			result = append(result, reminder)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (model.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminder, ok := s.reminders[id]
	if !ok {
		return model.Reminder{}, ErrNotFound
	}
	return reminder, nil
}

func (s *MemoryStore) Save(_ context.Context, reminder model.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.reminders[reminder.ID]; ok {
		reminder.CreatedAt = existing.CreatedAt
	} else if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = now
	}
	reminder.UpdatedAt = now
	s.reminders[reminder.ID] = reminder
	return nil
}

func (s *MemoryStore) Update(_ context.Context, reminder model.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.reminders[reminder.ID]
	if !ok {
		return ErrNotFound
	}
	reminder.UserID = existing.UserID
	reminder.CreatedAt = existing.CreatedAt
	reminder.UpdatedAt = time.Now()
	s.reminders[reminder.ID] = reminder
	return nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.reminders, id)
	return nil
}

func (s *MemoryStore) DeleteAll(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, reminder := range s.reminders {
		if reminder.UserID == userID {
			delete(s.reminders, id)
		}
	}
	return nil
}
