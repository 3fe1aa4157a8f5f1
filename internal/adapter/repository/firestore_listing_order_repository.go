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

type firestoreListingOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreListingOrderRepository(client *firestore.Client) repository.ListingOrderRepository {
	return &firestoreListingOrderRepository{client: client}
}

func (r *firestoreListingOrderRepository) CreateWithNotifications(ctx context.Context, order *entity.ListingOrder, notifications []*entity.Notification) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	orderRef := r.client.Collection("listing_orders").Doc(order.ID)

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
		return errors.Internal("Failed to create listing order", err)
	}

	return nil
}

func (r *firestoreListingOrderRepository) GetByID(ctx context.Context, id string) (*entity.ListingOrder, error) {
	doc, err := r.client.Collection("listing_orders").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get listing order", err)
	}

	var order entity.ListingOrder
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse listing order data", err)
	}

	return &order, nil
}

// ListByListing returns every order placed against a listing. An empty result
// is a valid "no orders yet" state, not an error.
func (r *firestoreListingOrderRepository) ListByListing(ctx context.Context, listingID string) ([]*entity.ListingOrder, error) {
	iter := r.client.Collection("listing_orders").
		Where("listingId", "==", listingID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	orders := []*entity.ListingOrder{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listing orders", err)
		}

		var order entity.ListingOrder
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse listing order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

func (r *firestoreListingOrderRepository) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.ListingOrder, int64, error) {
	return r.listByField(ctx, "buyerId", buyerID, limit, offset)
}

func (r *firestoreListingOrderRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.ListingOrder, int64, error) {
	return r.listByField(ctx, "sellerId", sellerID, limit, offset)
}

func (r *firestoreListingOrderRepository) listByField(ctx context.Context, field, value string, limit, offset int) ([]*entity.ListingOrder, int64, error) {
	query := r.client.Collection("listing_orders").
		Where(field, "==", value).
		OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count listing orders", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.ListingOrder

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate listing orders", err)
		}

		var order entity.ListingOrder
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse listing order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *firestoreListingOrderRepository) UpdateStatus(ctx context.Context, id string, mutate func(*entity.ListingOrder) error) (*entity.ListingOrder, error) {
	ref := r.client.Collection("listing_orders").Doc(id)

	var updated entity.ListingOrder
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Order", err)
			}
			return errors.Internal("Failed to get listing order", err)
		}

		var order entity.ListingOrder
		if err := doc.DataTo(&order); err != nil {
			return errors.Internal("Failed to parse listing order data", err)
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
