package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"proofroom/pkg/logger"
)

// Client is one live websocket connection.
type Client struct {
	Conn    *websocket.Conn
	AdminID uuid.UUID
	Room    string
	mu      sync.Mutex
}

// Message is the wire envelope for server pushes.
type Message struct {
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Hub tracks connected clients and fans out events. Sync progress events
// go to the owning admin's connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*Client
}

// Manager is the process-wide hub.
var Manager = &Hub{
	clients: make(map[*websocket.Conn]*Client),
}

func (h *Hub) RegisterClient(conn *websocket.Conn, adminID uuid.UUID, room string) {
	h.mu.Lock()
	h.clients[conn] = &Client{
		Conn:    conn,
		AdminID: adminID,
		Room:    room,
	}
	count := len(h.clients)
	h.mu.Unlock()

	logger.WebSocket("client_registered", "websocket client connected", map[string]interface{}{
		"admin_id":     adminID.String(),
		"room":         room,
		"client_count": count,
	})
}

func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mu.Lock()
	client, ok := h.clients[conn]
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()

	if ok {
		logger.WebSocket("client_unregistered", "websocket client disconnected", map[string]interface{}{
			"admin_id":     client.AdminID.String(),
			"client_count": count,
		})
	}
}

// BroadcastToAdmin sends a message to every connection of one admin.
func (h *Hub) BroadcastToAdmin(adminID uuid.UUID, messageType string, data map[string]interface{}) {
	payload, err := json.Marshal(Message{
		Type:      messageType,
		Data:      data,
		Timestamp: time.Now(),
	})
	if err != nil {
		logger.WebSocketError("marshal_failed", "failed to encode broadcast", err, map[string]interface{}{
			"type": messageType,
		})
		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0)
	for _, client := range h.clients {
		if client.AdminID == adminID {
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range targets {
		client.mu.Lock()
		err := client.Conn.WriteMessage(websocket.TextMessage, payload)
		client.mu.Unlock()
		if err != nil {
			logger.WebSocketError("write_failed", "failed to push message", err, map[string]interface{}{
				"admin_id": adminID.String(),
				"type":     messageType,
			})
		}
	}
}

// ClientCount reports connected clients, for health reporting.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleWebSocketMessage answers client pings; everything else is ignored,
// the socket is push-only.
func HandleWebSocketMessage(conn *websocket.Conn, messageType int, message []byte) {
	var incoming Message
	if err := json.Unmarshal(message, &incoming); err != nil {
		return
	}

	if incoming.Type == "ping" {
		payload, _ := json.Marshal(Message{Type: "pong", Timestamp: time.Now()})
		conn.WriteMessage(websocket.TextMessage, payload)
	}
}
