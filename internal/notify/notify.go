package notify

import "context"

// Notification is a user-visible alert built from a resolved reminder.
// TargetID is the reminder id the client opens on tap.
type Notification struct {
	Receiver string `json:"-"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	TargetID string `json:"reminder_id"`
}

// Notifier presents notifications. Dispatch is asynchronous from the
// caller's perspective; no delivery acknowledgement is observed.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
