package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"magicwheel/internal/infrastructure/firebase"
	ws "magicwheel/internal/infrastructure/websocket"
	"magicwheel/pkg/errors"
	"magicwheel/pkg/logger"
	"magicwheel/pkg/response"
)

type WebSocketHandler struct {
	wsManager  *ws.Manager
	authClient *firebase.AuthClient
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, authClient *firebase.AuthClient) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:  wsManager,
		authClient: authClient,
	}
}

// HandleWebSocket authenticates via a token query parameter, since browser
// WebSocket clients cannot set an Authorization header on the upgrade.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("Authentication token is required", nil))
	}

	userID, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	// The connection is hijacked once Upgrade is called; the upgrader has
	// already written its own error response, so there is nothing left to
	// send through the JSON envelope.
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed for %s: %v", userID, err)
		return nil
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
