package model

import (
	"time"

	"github.com/bwise1/georemind/util"
	"github.com/bwise1/georemind/util/values"
	"github.com/google/uuid"
)

// Reminder is the persisted entity. ID doubles as the geofence request id,
// so it never changes for the reminder's lifetime.
type Reminder struct {
	ID          string    `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReminderRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// ValidateEnteredData gates persistence: a reminder needs a title and a
// chosen location before it may be saved. Returns the message code to
// surface when validation fails. Title is checked first.
func (r ReminderRequest) ValidateEnteredData() (string, bool) {
	if !util.NotBlank(r.Title) {
		return values.MsgErrEnterTitle, false
	}
	if !util.NotBlank(r.Location) {
		return values.MsgErrSelectLocation, false
	}
	return "", true
}

// HasCoordinates reports whether the location step was completed.
func (r Reminder) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
