package repository

import (
	"context"

	"magicwheel/internal/domain/entity"
)

type NotificationRepository interface {
	Append(ctx context.Context, notification *entity.Notification) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}
