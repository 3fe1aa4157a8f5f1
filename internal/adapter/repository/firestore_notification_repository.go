package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	"magicwheel/pkg/errors"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{client: client}
}

func (r *firestoreNotificationRepository) Append(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()

	_, err := r.client.Collection("notifications").Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to append notification", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	query := r.client.Collection("notifications").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count notifications", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var notifications []*entity.Notification

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate notifications", err)
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, 0, errors.Internal("Failed to parse notification data", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, total, nil
}

// MarkRead flips the read flag on one entry, scoped to its owner.
func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	ref := r.client.Collection("notifications").Doc(notificationID)

	doc, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Notification", err)
		}
		return errors.Internal("Failed to get notification", err)
	}

	var notification entity.Notification
	if err := doc.DataTo(&notification); err != nil {
		return errors.Internal("Failed to parse notification data", err)
	}

	if notification.UserID != userID {
		return errors.NotFound("Notification", nil)
	}

	_, err = ref.Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		return errors.Internal("Failed to mark notification as read", err)
	}

	return nil
}
