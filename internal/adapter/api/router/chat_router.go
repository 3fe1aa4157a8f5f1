package router

import (
	"magicwheel/internal/adapter/api/handler"
	"magicwheel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)
	chats.GET("", chatHandler.ListChats)
	chats.POST("/:chatId/messages", chatHandler.SendMessage)
	chats.GET("/:chatId/messages", chatHandler.GetMessages)
}
