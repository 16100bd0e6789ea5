package geofence

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Fixed circular-region parameters. Every reminder gets one entry trigger
// with this radius; the engine stops tracking a trigger after Expiration.
const (
	RadiusMeters = 100.0
	Expiration   = 12 * time.Hour
)

type Transition int

const (
	TransitionEnter Transition = iota + 1
	TransitionExit
)

// Engine error codes reported on transition events.
const (
	ErrorCodeNotAvailable    = 1000
	ErrorCodeTooManyTriggers = 1001
)

// MaxTriggers caps concurrently registered triggers per engine.
const MaxTriggers = 100

// Trigger is the volatile shadow of a reminder the engine needs to detect
// entry events. Its ID is the reminder id, the single key tying the durable
// record to this registry.
type Trigger struct {
	ID         string
	UserID     uuid.UUID
	Latitude   float64
	Longitude  float64
	Radius     float64
	ExpiresAt  time.Time
	Transition Transition
}

// Event is the transition callback payload delivered to the handler.
type Event struct {
	HasError      bool
	ErrorCode     int
	Transition    Transition
	TriggeringIDs []string
	UserID        uuid.UUID
}

// Registrar registers and removes triggers. Register with an id that is
// already present replaces the existing trigger; Unregister of an unknown
// id is a no-op.
type Registrar interface {
	Register(ctx context.Context, trigger Trigger) error
	Unregister(ctx context.Context, id string) error
}

// TransitionHandler consumes transition events. Implementations must not
// panic through this boundary; an event is fire-and-forget for the engine.
type TransitionHandler interface {
	HandleTransition(ctx context.Context, event Event)
}

// NewTrigger builds the entry trigger for a reminder using the fixed
// radius and expiration.
func NewTrigger(id string, userID uuid.UUID, latitude, longitude float64) Trigger {
	return Trigger{
		ID:         id,
		UserID:     userID,
		Latitude:   latitude,
		Longitude:  longitude,
		Radius:     RadiusMeters,
		ExpiresAt:  time.Now().Add(Expiration),
		Transition: TransitionEnter,
	}
}

// ErrorMessage returns the log string for an event error code.
func ErrorMessage(code int) string {
	switch code {
	case ErrorCodeNotAvailable:
		return "geofence service is not available now"
	case ErrorCodeTooManyTriggers:
		return "your app has registered too many geofences"
	default:
		return "unknown geofence error"
	}
}
