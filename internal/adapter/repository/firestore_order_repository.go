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

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{client: client}
}

func (r *firestoreOrderRepository) CreateWithNotifications(ctx context.Context, order *entity.Order, notifications []*entity.Notification) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	orderRef := r.client.Collection("orders").Doc(order.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(orderRef, order); err != nil {
			return err
		}
		for _, n := range notifications {
			if n.ID == "" {
				n.ID = uuid.New().String()
			}
			n.CreatedAt = now
			ref := r.client.Collection("notifications").Doc(n.ID)
			if err := tx.Set(ref, n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

// UpdateStatus applies mutate to a fresh read of the order inside a Firestore
// transaction, so concurrent writers serialize on the document. mutate errors
// abort the transaction and surface unchanged.
func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, id string, mutate func(*entity.Order) error) (*entity.Order, error) {
	ref := r.client.Collection("orders").Doc(id)

	var updated entity.Order
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Order", err)
			}
			return errors.Internal("Failed to get order", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return errors.Internal("Failed to parse order data", err)
		}

		if err := mutate(&order); err != nil {
			return err
		}

		order.Version++
		order.UpdatedAt = time.Now()
		updated = order

		return tx.Set(ref, order)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
