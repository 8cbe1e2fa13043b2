package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	websocketManager "proofroom/infrastructure/websocket"
	"proofroom/pkg/logger"
	"proofroom/pkg/utils"
)

type WebSocketHandler struct{}

func NewWebSocketHandler() *WebSocketHandler {
	return &WebSocketHandler{}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	var adminID uuid.UUID
	var roomID string

	// Try to get admin from context (set by OptionalWithQueryToken middleware)
	if adminContext := c.Locals("admin"); adminContext != nil {
		if admin, ok := adminContext.(*utils.AdminContext); ok {
			adminID = admin.ID
		}
	}

	// Anonymous connections get a throwaway ID; sync broadcasts are keyed
	// by the admin ID so they only reach authenticated sockets
	if adminID == uuid.Nil {
		adminID = uuid.New()
		logger.WebSocket("anonymous_connected", "Anonymous client connected", map[string]interface{}{"admin_id": adminID.String()})
	} else {
		logger.WebSocket("authenticated_connected", "Authenticated admin connected", map[string]interface{}{"admin_id": adminID.String()})
	}

	roomID = c.Query("room", "")

	websocketManager.Manager.RegisterClient(c, adminID, roomID)

	defer func() {
		websocketManager.Manager.UnregisterClient(c)
	}()

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.WebSocketError("read_message", "WebSocket read error", err, map[string]interface{}{"admin_id": adminID.String()})
			break
		}

		websocketManager.HandleWebSocketMessage(c, messageType, message)
	}
}
