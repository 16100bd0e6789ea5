package websockets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/bwise1/georemind/util"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebSocketManager initializes a WebSocketManager
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]*Client),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
		send:       make(chan DirectMessage),
	}
}

// SetPositionSink attaches the sink that receives client position fixes.
// Must be called before Run.
func (manager *WebSocketManager) SetPositionSink(positions PositionSink) {
	manager.positions = positions
}

// Run starts the WebSocket manager
func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if client, exists := manager.clients[conn]; exists {
				delete(manager.clients, conn)
				conn.Close()
				log.Printf("Client %s disconnected", client.UserID)
			}
			manager.mu.Unlock()

		case direct := <-manager.send:
			manager.mu.Lock()
			for _, client := range manager.clients {
				if client.UserID == direct.ReceiverID {
					if err := client.Conn.WriteMessage(websocket.TextMessage, direct.Payload); err != nil {
						client.Conn.Close()
						delete(manager.clients, client.Conn)
					}
					break
				}
			}
			manager.mu.Unlock()
		}
	}
}

// HandleConnections upgrades HTTP requests to WebSocket connections
func (manager *WebSocketManager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket Upgrade Error:", err)
		return
	}

	client := &Client{Conn: conn}
	manager.register <- client

	defer func() {
		manager.unregister <- conn
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			manager.unregister <- conn
			break
		}

		var message Message
		if err := json.Unmarshal(msg, &message); err != nil {
			log.Println("Invalid JSON:", err)
			continue
		}

		switch message.Type {
		case MsgTypeSubscribe:
			manager.subscribe(client, message.UserID)

		case MsgTypePositionUpdate:
			manager.forwardPosition(r.Context(), client, message.Latitude, message.Longitude)

		case MsgTypeTrackUpdate:
			// Offline-buffered fixes arrive as an encoded polyline and are
			// replayed through the engine in order.
			coords, err := util.DecodePolyLines(message.Polyline)
			if err != nil {
				log.Println("invalid track polyline:", err)
				continue
			}
			for _, coord := range coords {
				manager.forwardPosition(r.Context(), client, coord.Lat, coord.Lon)
			}
		}
	}
}

// subscribe binds the connection to a user id. Run and forwardPosition read
// Client.UserID concurrently with the read loop, so the write takes the
// manager lock.
func (manager *WebSocketManager) subscribe(client *Client, userID string) {
	manager.mu.Lock()
	client.UserID = userID
	manager.mu.Unlock()
}

func (manager *WebSocketManager) forwardPosition(ctx context.Context, client *Client, latitude, longitude float64) {
	manager.mu.Lock()
	id := client.UserID
	manager.mu.Unlock()

	if manager.positions == nil || id == "" {
		return
	}
	userID, err := uuid.Parse(id)
	if err != nil {
		log.Println("invalid user id on position update:", err)
		return
	}
	manager.positions.UpdatePosition(ctx, userID, latitude, longitude)
}

// SendToUser queues a payload for the connection subscribed with userID.
func (manager *WebSocketManager) SendToUser(userID string, payload []byte) error {
	if userID == "" {
		return fmt.Errorf("missing receiver for direct message")
	}
	manager.send <- DirectMessage{ReceiverID: userID, Payload: payload}
	return nil
}
