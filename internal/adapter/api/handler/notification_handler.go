package handler

import (
	"magicwheel/internal/usecase"
	"magicwheel/pkg/response"
	"magicwheel/pkg/utils"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	notifications, total, err := h.notificationUseCase.List(
		c.Request().Context(),
		uid,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, notifications, total, pagination.Page, pagination.PageSize)
}

func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Notification marked as read",
	})
}
