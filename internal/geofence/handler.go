package geofence

import (
	"context"
	"log"
	"sync"

	"github.com/bwise1/georemind/internal/notify"
	"github.com/bwise1/georemind/internal/reminders"
	"github.com/pkg/errors"
)

const maxConcurrentLookups = 4

// TransitionService consumes transition events: it resolves each triggering
// id against the reminder repository and forwards resolved reminders to the
// notifier. Every invocation is a cold start — no state survives between
// events, and nothing thrown below may escape to the engine.
type TransitionService struct {
	repo     *reminders.Repository
	notifier notify.Notifier
}

func NewTransitionService(repo *reminders.Repository, notifier notify.Notifier) *TransitionService {
	return &TransitionService{repo: repo, notifier: notifier}
}

// HandleTransition processes one event. Error events and non-entry
// transitions are logged and discarded. Each triggering id is resolved
// independently and concurrently; ordering between ids is not guaranteed.
func (s *TransitionService) HandleTransition(ctx context.Context, event Event) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("panic handling geofence event: %v", p)
		}
	}()

	if event.HasError {
		log.Printf("error at geofencing event: %s", ErrorMessage(event.ErrorCode))
		return
	}

	if event.Transition != TransitionEnter {
		return
	}

	if len(event.TriggeringIDs) == 0 {
		log.Println("no geofence trigger found in event")
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentLookups)

	for _, id := range event.TriggeringIDs {
		wg.Add(1)
		sem <- struct{}{}
		requestID := id
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			s.resolveAndNotify(ctx, requestID)
		}()
	}
	wg.Wait()
}

// resolveAndNotify looks the id up and dispatches a notification built from
// the reminder's title and location. An id with no matching reminder means
// the reminder was deleted after the trigger fired; the event is dropped
// silently.
func (s *TransitionService) resolveAndNotify(ctx context.Context, id string) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("panic resolving geofence trigger %s: %v", id, p)
		}
	}()

	reminder, err := s.repo.GetReminder(ctx, id)
	if err != nil {
		if errors.Is(err, reminders.ErrNotFound) {
			// Orphaned trigger, nothing to surface.
			return
		}
		log.Printf("failed to resolve geofence trigger %s: %v", id, err)
		return
	}

	notification := notify.Notification{
		Receiver: reminder.UserID.String(),
		Title:    reminder.Title,
		Body:     reminder.Location,
		TargetID: reminder.ID,
	}
	if err := s.notifier.Notify(ctx, notification); err != nil {
		log.Printf("failed to dispatch notification for reminder %s: %v", id, err)
	}
}
