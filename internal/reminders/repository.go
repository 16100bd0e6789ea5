package reminders

import (
	"context"
	"fmt"

	"github.com/bwise1/georemind/internal/model"
	"github.com/google/uuid"
)

// Repository is the transactional façade the rest of the service talks to.
// It adds operation context to store failures and converts store panics
// into errors so a misbehaving store can never take down a caller — the
// geofence transition handler in particular runs in a background goroutine
// with nothing above it to recover.
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

func (r *Repository) GetReminders(ctx context.Context, userID uuid.UUID) (result []model.Reminder, err error) {
	defer recoverStoreFault("get reminders", &err)

	result, err = r.store.GetAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get reminders: %w", err)
	}
	return result, nil
}

func (r *Repository) GetReminder(ctx context.Context, id string) (result model.Reminder, err error) {
	defer recoverStoreFault("get reminder", &err)

	result, err = r.store.GetByID(ctx, id)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("get reminder: %w", err)
	}
	return result, nil
}

func (r *Repository) SaveReminder(ctx context.Context, reminder model.Reminder) (err error) {
	defer recoverStoreFault("save reminder", &err)

	if err = r.store.Save(ctx, reminder); err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}
	return nil
}

func (r *Repository) UpdateReminder(ctx context.Context, reminder model.Reminder) (err error) {
	defer recoverStoreFault("update reminder", &err)

	if err = r.store.Update(ctx, reminder); err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	return nil
}

func (r *Repository) DeleteReminder(ctx context.Context, id string) (err error) {
	defer recoverStoreFault("delete reminder", &err)

	if err = r.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

func (r *Repository) DeleteAllReminders(ctx context.Context, userID uuid.UUID) (err error) {
	defer recoverStoreFault("delete all reminders", &err)

	if err = r.store.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("delete all reminders: %w", err)
	}
	return nil
}

func recoverStoreFault(op string, err *error) {
	if p := recover(); p != nil {
		*err = fmt.Errorf("%s: store fault: %v", op, p)
	}
}
