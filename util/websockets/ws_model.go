package websockets

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSubscribe      = "subscribe"
	MsgTypePositionUpdate = "position_update"
	MsgTypeTrackUpdate    = "track_update"
	MsgTypeReminderAlert  = "reminder_alert"
)

// Client represents a connected WebSocket user
type Client struct {
	Conn   *websocket.Conn
	UserID string
}

// PositionSink receives position fixes reported by connected clients.
// Implemented by the geofence engine.
type PositionSink interface {
	UpdatePosition(ctx context.Context, userID uuid.UUID, latitude, longitude float64)
}

type WebSocketManager struct {
	clients    map[*websocket.Conn]*Client
	register   chan *Client
	unregister chan *websocket.Conn
	send       chan DirectMessage
	positions  PositionSink
	mu         sync.Mutex
}

// DirectMessage carries a payload for a single connected user.
type DirectMessage struct {
	ReceiverID string
	Payload    []byte
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type      string  `json:"type"`
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	// Polyline carries a batch of buffered GPS fixes (encoded polyline)
	// for track_update messages.
	Polyline string `json:"polyline,omitempty"`
}

// Alert is the outgoing reminder_alert frame.
type Alert struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	ReminderID string `json:"reminder_id"`
}
