package reminders

import (
	"context"
	"errors"
	"testing"

	"github.com/bwise1/georemind/internal/model"
	"github.com/google/uuid"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func newTestReminder(id string, userID uuid.UUID) model.Reminder {
	return model.Reminder{
		ID:          id,
		UserID:      userID,
		Title:       "T",
		Description: "D",
		Location:    "L",
		Latitude:    float64Ptr(1.0),
		Longitude:   float64Ptr(2.0),
	}
}

func TestMemoryStoreSaveAndGetByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	reminder := newTestReminder("id-1", userID)
	if err := store.Save(ctx, reminder); err != nil {
		t.Fatalf("Save returned error %v", err)
	}

	got, err := store.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("GetByID returned error %v", err)
	}

	if got.Title != reminder.Title ||
		got.Description != reminder.Description ||
		got.Location != reminder.Location ||
		*got.Latitude != *reminder.Latitude ||
		*got.Longitude != *reminder.Longitude {
		t.Errorf("GetByID = %+v; want fields of %+v", got, reminder)
	}
}

func TestMemoryStoreUpsertKeepsLatestValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	first := newTestReminder("id-1", userID)
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save returned error %v", err)
	}

	second := first
	second.Title = "new title"
	second.Location = "new location"
	second.Latitude = float64Ptr(30.0)
	second.Longitude = float64Ptr(40.0)
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second Save returned error %v", err)
	}

	all, err := store.GetAll(ctx, userID)
	if err != nil {
		t.Fatalf("GetAll returned error %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("GetAll returned %d reminders; want 1", len(all))
	}

	got, err := store.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("GetByID returned error %v", err)
	}
	if got.Title != "new title" || got.Location != "new location" || *got.Latitude != 30.0 {
		t.Errorf("upsert left stale values: %+v", got)
	}
}

func TestMemoryStoreDeleteThenLookup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	reminder := newTestReminder("id-1", userID)
	if err := store.Save(ctx, reminder); err != nil {
		t.Fatalf("Save returned error %v", err)
	}
	if err := store.DeleteByID(ctx, "id-1"); err != nil {
		t.Fatalf("DeleteByID returned error %v", err)
	}

	if _, err := store.GetByID(ctx, "id-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v; want ErrNotFound", err)
	}
}

func TestMemoryStoreDeleteByIDMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.DeleteByID(ctx, "missing"); err != nil {
		t.Errorf("DeleteByID on missing id = %v; want nil", err)
	}
}

func TestMemoryStoreDeleteAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Save(ctx, newTestReminder(id, userID)); err != nil {
			t.Fatalf("Save returned error %v", err)
		}
	}

	if err := store.DeleteAll(ctx, userID); err != nil {
		t.Fatalf("DeleteAll returned error %v", err)
	}

	all, err := store.GetAll(ctx, userID)
	if err != nil {
		t.Fatalf("GetAll returned error %v", err)
	}
	if len(all) != 0 {
		t.Errorf("GetAll after DeleteAll returned %d reminders; want 0", len(all))
	}
}

func TestMemoryStoreDeleteOneOfTwo(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	if err := store.Save(ctx, newTestReminder("a", userID)); err != nil {
		t.Fatalf("Save returned error %v", err)
	}
	if err := store.Save(ctx, newTestReminder("b", userID)); err != nil {
		t.Fatalf("Save returned error %v", err)
	}
	if err := store.DeleteByID(ctx, "a"); err != nil {
		t.Fatalf("DeleteByID returned error %v", err)
	}

	all, err := store.GetAll(ctx, userID)
	if err != nil {
		t.Fatalf("GetAll returned error %v", err)
	}
	if len(all) != 1 || all[0].ID != "b" {
		t.Errorf("GetAll after deleting a = %+v; want exactly reminder b", all)
	}
}

func TestMemoryStoreUpdateMissingIDFails(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	err := store.Update(ctx, newTestReminder("missing", userID))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update on missing id = %v; want ErrNotFound", err)
	}

	// Update must never create a record under a new id.
	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update on missing id created a record")
	}
}

func TestMemoryStoreUpdatePreservesOwnerAndCreation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	original := newTestReminder("id-1", userID)
	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save returned error %v", err)
	}
	saved, err := store.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("GetByID returned error %v", err)
	}

	updated := saved
	updated.Title = "updated"
	if err := store.Update(ctx, updated); err != nil {
		t.Fatalf("Update returned error %v", err)
	}

	got, err := store.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("GetByID returned error %v", err)
	}
	if got.ID != "id-1" {
		t.Errorf("Update changed the id to %q", got.ID)
	}
	if got.UserID != userID {
		t.Errorf("Update changed the owner to %v", got.UserID)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("Update changed CreatedAt from %v to %v", saved.CreatedAt, got.CreatedAt)
	}
	if got.Title != "updated" {
		t.Errorf("Update did not apply the new title: %q", got.Title)
	}
}

func TestMemoryStoreGetAllScopedByUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	alice := uuid.New()
	bob := uuid.New()

	if err := store.Save(ctx, newTestReminder("a", alice)); err != nil {
		t.Fatalf("Save returned error %v", err)
	}
	if err := store.Save(ctx, newTestReminder("b", bob)); err != nil {
		t.Fatalf("Save returned error %v", err)
	}

	all, err := store.GetAll(ctx, alice)
	if err != nil {
		t.Fatalf("GetAll returned error %v", err)
	}
	if len(all) != 1 || all[0].ID != "a" {
		t.Errorf("GetAll for alice = %+v; want only reminder a", all)
	}
}
