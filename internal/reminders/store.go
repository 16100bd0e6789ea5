package reminders

import (
	"context"
	"errors"

	"github.com/bwise1/georemind/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no reminder exists for a given id.
var ErrNotFound = errors.New("reminder not found")

// Store is the durable keyed storage for reminders. Implementations must
// serialize concurrent writers; a single Save or Update is all-or-nothing.
type Store interface {
	// GetAll returns every reminder owned by userID, empty slice if none.
	GetAll(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error)
	// GetByID returns the reminder with that id or ErrNotFound.
	GetByID(ctx context.Context, id string) (model.Reminder, error)
	// Save inserts or fully replaces the record keyed by reminder.ID.
	Save(ctx context.Context, reminder model.Reminder) error
	// Update writes the record only when its id already exists,
	// otherwise ErrNotFound. It never creates a new record.
	Update(ctx context.Context, reminder model.Reminder) error
	// DeleteByID removes the record with that id, a no-op if absent.
	DeleteByID(ctx context.Context, id string) error
	// DeleteAll clears every reminder owned by userID.
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}
