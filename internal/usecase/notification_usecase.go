package usecase

import (
	"context"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pusher           EventPusher
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	pusher EventPusher,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pusher:           pusher,
	}
}

// Append adds one entry to the user's notification log. The log is
// append-only and unbounded.
func (u *NotificationUseCase) Append(ctx context.Context, userID, message, notificationType, icon, color string) (*entity.Notification, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		UserID:  userID,
		Message: message,
		Type:    notificationType,
		Icon:    icon,
		Color:   color,
	}

	if err := u.notificationRepo.Append(ctx, notification); err != nil {
		return nil, err
	}

	u.pusher.SendEvent(userID, "notification", notification)
	return notification, nil
}

func (u *NotificationUseCase) List(ctx context.Context, userID string, page, pageSize int) ([]*entity.Notification, int64, error) {
	offset := (page - 1) * pageSize
	return u.notificationRepo.ListByUser(ctx, userID, pageSize, offset)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	return u.notificationRepo.MarkRead(ctx, userID, notificationID)
}
