package reminders

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwise1/georemind/internal/model"
	"github.com/google/uuid"
)

// faultyStore is a test double that can be switched into a failing or
// panicking mode for every operation.
type faultyStore struct {
	*MemoryStore
	returnError bool
	panicMode   bool
}

func (s *faultyStore) fail() error {
	if s.panicMode {
		panic("storage engine exploded")
	}
	if s.returnError {
		return errors.New("can't load reminders")
	}
	return nil
}

func (s *faultyStore) GetAll(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error) {
	if err := s.fail(); err != nil {
		return nil, err
	}
	return s.MemoryStore.GetAll(ctx, userID)
}

func (s *faultyStore) GetByID(ctx context.Context, id string) (model.Reminder, error) {
	if err := s.fail(); err != nil {
		return model.Reminder{}, err
	}
	return s.MemoryStore.GetByID(ctx, id)
}

func (s *faultyStore) Save(ctx context.Context, reminder model.Reminder) error {
	if err := s.fail(); err != nil {
		return err
	}
	return s.MemoryStore.Save(ctx, reminder)
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())
	userID := uuid.New()

	reminder := newTestReminder("id-1", userID)
	if err := repo.SaveReminder(ctx, reminder); err != nil {
		t.Fatalf("SaveReminder returned error %v", err)
	}

	got, err := repo.GetReminder(ctx, "id-1")
	if err != nil {
		t.Fatalf("GetReminder returned error %v", err)
	}
	if got.Title != reminder.Title || got.Location != reminder.Location {
		t.Errorf("GetReminder = %+v; want fields of %+v", got, reminder)
	}
}

func TestRepositoryGetReminderNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())

	_, err := repo.GetReminder(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetReminder on empty store = %v; want ErrNotFound", err)
	}
}

func TestRepositoryWrapsStoreErrors(t *testing.T) {
	ctx := context.Background()
	store := &faultyStore{MemoryStore: NewMemoryStore(), returnError: true}
	repo := NewRepository(store)

	_, err := repo.GetReminders(ctx, uuid.New())
	if err == nil {
		t.Fatal("GetReminders on failing store returned nil error")
	}
	if !strings.Contains(err.Error(), "get reminders") {
		t.Errorf("error %q lacks operation context", err)
	}
}

func TestRepositoryRecoversStorePanics(t *testing.T) {
	ctx := context.Background()
	store := &faultyStore{MemoryStore: NewMemoryStore(), panicMode: true}
	repo := NewRepository(store)

	// Must not propagate the panic to the caller.
	_, err := repo.GetReminder(ctx, "id-1")
	if err == nil {
		t.Fatal("GetReminder on panicking store returned nil error")
	}
	if !strings.Contains(err.Error(), "store fault") {
		t.Errorf("error %q does not mark the store fault", err)
	}

	if err := repo.SaveReminder(ctx, newTestReminder("id-1", uuid.New())); err == nil {
		t.Fatal("SaveReminder on panicking store returned nil error")
	}
}

func TestRepositoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(NewMemoryStore())
	userID := uuid.New()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		go func() {
			defer func() { done <- struct{}{} }()
			if err := repo.SaveReminder(ctx, newTestReminder(id, userID)); err != nil {
				t.Errorf("SaveReminder(%s) returned error %v", id, err)
			}
			if _, err := repo.GetReminder(ctx, id); err != nil {
				t.Errorf("GetReminder(%s) returned error %v", id, err)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	all, err := repo.GetReminders(ctx, userID)
	if err != nil {
		t.Fatalf("GetReminders returned error %v", err)
	}
	if len(all) != 8 {
		t.Errorf("GetReminders returned %d reminders; want 8", len(all))
	}
}
