package handler

import (
	"magicwheel/internal/usecase"
	"magicwheel/pkg/errors"
	"magicwheel/pkg/response"

	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Body       string `json:"body" validate:"required"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	chatID := c.Param("chatId")

	if chatID == "" {
		return response.Error(c, errors.BadRequest("Chat ID is required", nil))
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, chatID, req.ReceiverID, req.Body)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.chatUseCase.GetMessages(c.Request().Context(), uid, c.Param("chatId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	uid := c.Get("uid").(string)

	chats, err := h.chatUseCase.ListChats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chats)
}
