package geofence

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bwise1/georemind/util"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sweepInterval = time.Minute

// trackedTrigger pairs a trigger with its last known containment state so
// the engine can detect the outside→inside edge.
type trackedTrigger struct {
	Trigger
	inside bool
}

// Engine is the in-process trigger registry. It holds registered triggers
// in memory, evaluates position fixes against them and delivers one Event
// per fix listing every trigger entered by it. The registry is volatile:
// the durable reminder store remains the only source of truth, and an
// event id that no longer resolves to a reminder is simply dropped by the
// handler downstream.
type Engine struct {
	mu       sync.Mutex
	triggers map[string]*trackedTrigger
	handler  TransitionHandler
	now      func() time.Time
}

func NewEngine(handler TransitionHandler) *Engine {
	return &Engine{
		triggers: make(map[string]*trackedTrigger),
		handler:  handler,
		now:      time.Now,
	}
}

// Register adds the trigger, replacing any existing trigger with the same
// id. Replacement resets containment state so a region move is evaluated
// fresh on the next fix.
func (e *Engine) Register(_ context.Context, trigger Trigger) error {
	if trigger.ID == "" {
		return errors.New("trigger id is required")
	}
	if trigger.Radius <= 0 {
		return errors.New("trigger radius must be positive")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.triggers[trigger.ID]; !exists && len(e.triggers) >= MaxTriggers {
		return errors.New(ErrorMessage(ErrorCodeTooManyTriggers))
	}
	e.triggers[trigger.ID] = &trackedTrigger{Trigger: trigger}
	return nil
}

// Unregister removes the trigger with that id, a no-op when absent.
func (e *Engine) Unregister(_ context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.triggers, id)
	return nil
}

// Count returns the number of live triggers.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.triggers)
}

// UpdatePosition evaluates a position fix for userID. Every entry trigger
// owned by that user whose region now contains the fix, and did not contain
// the previous one, contributes its id to a single ENTER event. Delivery is
// synchronous on the caller's goroutine; the handler owns its own fan-out.
func (e *Engine) UpdatePosition(ctx context.Context, userID uuid.UUID, latitude, longitude float64) {
	now := e.now()

	e.mu.Lock()
	var entered []string
	for id, tracked := range e.triggers {
		if now.After(tracked.ExpiresAt) {
			delete(e.triggers, id)
			continue
		}
		if tracked.UserID != userID {
			continue
		}

		inside := util.HaversineMeters(latitude, longitude, tracked.Latitude, tracked.Longitude) <= tracked.Radius
		if inside && !tracked.inside && tracked.Transition == TransitionEnter {
			entered = append(entered, id)
		}
		tracked.inside = inside
	}
	e.mu.Unlock()

	if len(entered) == 0 {
		return
	}

	e.handler.HandleTransition(ctx, Event{
		Transition:    TransitionEnter,
		TriggeringIDs: entered,
		UserID:        userID,
	})
}

// Run sweeps expired triggers until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := e.sweepExpired(); removed > 0 {
				log.Printf("geofence sweep removed %d expired triggers", removed)
			}
		}
	}
}

func (e *Engine) sweepExpired() int {
	now := e.now()

	e.mu.Lock()
	defer e.mu.Unlock()

	removed := 0
	for id, tracked := range e.triggers {
		if now.After(tracked.ExpiresAt) {
			delete(e.triggers, id)
			removed++
		}
	}
	return removed
}
