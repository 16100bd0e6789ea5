package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bwise1/georemind/util/websockets"
)

// WebSocketNotifier pushes reminder alerts over the hub to the owning
// user's connection. A user without a live connection simply misses the
// alert; delivery is best-effort.
type WebSocketNotifier struct {
	hub *websockets.WebSocketManager
}

func NewWebSocketNotifier(hub *websockets.WebSocketManager) *WebSocketNotifier {
	return &WebSocketNotifier{hub: hub}
}

func (n *WebSocketNotifier) Notify(_ context.Context, notification Notification) error {
	frame := websockets.Alert{
		Type:       websockets.MsgTypeReminderAlert,
		Title:      notification.Title,
		Body:       notification.Body,
		ReminderID: notification.TargetID,
	}
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshalling reminder alert: %w", err)
	}
	return n.hub.SendToUser(notification.Receiver, payload)
}
