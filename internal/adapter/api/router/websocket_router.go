package router

import (
	"magicwheel/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/ws", wsHandler.HandleWebSocket)
}
