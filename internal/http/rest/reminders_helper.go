package rest

import (
	"context"
	"log"

	"github.com/bwise1/georemind/internal/geofence"
	"github.com/bwise1/georemind/internal/model"
	"github.com/bwise1/georemind/internal/reminders"
	"github.com/bwise1/georemind/util"
	"github.com/bwise1/georemind/util/values"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SaveReminderHelper runs the save flow: validate, persist, then register
// the entry trigger under the freshly generated id. Trigger registration is
// fire-and-forget — a failure is surfaced in the response message but never
// rolls back the completed store write.
func (api *API) SaveReminderHelper(ctx context.Context, userID uuid.UUID, req model.ReminderRequest) (model.Reminder, string, string, error) {
	if msg, ok := req.ValidateEnteredData(); !ok {
		return model.Reminder{}, values.Unprocessable, msg, errors.New("reminder validation failed")
	}

	reminder := model.Reminder{
		ID:          util.GenerateUUID().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := api.Repo.SaveReminder(ctx, reminder); err != nil {
		return model.Reminder{}, values.Error, "Failed to save reminder", err
	}

	message := values.MsgReminderSaved
	if reminder.HasCoordinates() {
		trigger := geofence.NewTrigger(reminder.ID, userID, *reminder.Latitude, *reminder.Longitude)
		if err := api.Registrar.Register(ctx, trigger); err != nil {
			log.Printf("failed to register geofence for reminder %s: %v", reminder.ID, err)
			message = values.MsgGeofenceFailed
		}
	}

	return reminder, values.Created, message, nil
}

// UpdateReminderHelper runs the update flow. A missing record aborts the
// update (it may have been deleted concurrently). The id never changes; if
// the location moved, the old trigger is unregistered and a new one is
// registered under the same id so the trigger never references stale
// coordinates.
func (api *API) UpdateReminderHelper(ctx context.Context, userID uuid.UUID, id string, req model.ReminderRequest) (model.Reminder, string, string, error) {
	if msg, ok := req.ValidateEnteredData(); !ok {
		return model.Reminder{}, values.Unprocessable, msg, errors.New("reminder validation failed")
	}

	existing, err := api.Repo.GetReminder(ctx, id)
	if err != nil {
		if errors.Is(err, reminders.ErrNotFound) {
			return model.Reminder{}, values.NotFound, "Reminder not found", err
		}
		return model.Reminder{}, values.Error, "Failed to load reminder", err
	}
	if existing.UserID != userID {
		return model.Reminder{}, values.NotAllowed, "Reminder belongs to another user", errors.New("reminder owner mismatch")
	}

	locationChanged := existing.Location != req.Location ||
		!floatPtrEqual(existing.Latitude, req.Latitude) ||
		!floatPtrEqual(existing.Longitude, req.Longitude)

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Location = req.Location
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude

	if err := api.Repo.UpdateReminder(ctx, existing); err != nil {
		if errors.Is(err, reminders.ErrNotFound) {
			return model.Reminder{}, values.NotFound, "Reminder not found", err
		}
		return model.Reminder{}, values.Error, "Failed to update reminder", err
	}

	message := values.MsgReminderUpdated
	if locationChanged {
		if err := api.Registrar.Unregister(ctx, existing.ID); err != nil {
			log.Printf("failed to unregister geofence for reminder %s: %v", existing.ID, err)
		}
		if existing.HasCoordinates() {
			trigger := geofence.NewTrigger(existing.ID, userID, *existing.Latitude, *existing.Longitude)
			if err := api.Registrar.Register(ctx, trigger); err != nil {
				log.Printf("failed to re-register geofence for reminder %s: %v", existing.ID, err)
				message = values.MsgGeofenceFailed
			}
		}
	}

	return existing, values.Success, message, nil
}

// DeleteReminderHelper unregisters the trigger before deleting the record,
// narrowing the window in which a trigger could still fire for an
// about-to-be-deleted reminder. Only the owner may delete; a record that is
// already gone makes the delete a no-op.
func (api *API) DeleteReminderHelper(ctx context.Context, userID uuid.UUID, id string) (string, string, error) {
	existing, err := api.Repo.GetReminder(ctx, id)
	if err != nil {
		if errors.Is(err, reminders.ErrNotFound) {
			return values.Success, values.MsgReminderDeleted, nil
		}
		return values.Error, "Failed to load reminder", err
	}
	if existing.UserID != userID {
		return values.NotAllowed, "Reminder belongs to another user", errors.New("reminder owner mismatch")
	}

	if err := api.Registrar.Unregister(ctx, id); err != nil {
		log.Printf("failed to unregister geofence for reminder %s: %v", id, err)
	}

	if err := api.Repo.DeleteReminder(ctx, id); err != nil {
		return values.Error, "Failed to delete reminder", err
	}
	return values.Success, values.MsgReminderDeleted, nil
}

// ListRemindersHelper collapses an empty result and a failed load into the
// same empty-state payload, with the failure noted in the message.
func (api *API) ListRemindersHelper(ctx context.Context, userID uuid.UUID) ([]model.Reminder, string, string) {
	result, err := api.Repo.GetReminders(ctx, userID)
	if err != nil {
		log.Println("failed to load reminders", err)
		return []model.Reminder{}, values.Success, "Failed to load reminders"
	}
	if len(result) == 0 {
		return []model.Reminder{}, values.Success, "No reminders found"
	}
	return result, values.Success, "Reminders retrieved successfully"
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
