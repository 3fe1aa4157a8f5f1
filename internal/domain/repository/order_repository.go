package repository

import (
	"context"

	"magicwheel/internal/domain/entity"
)

type OrderRepository interface {
	// CreateWithNotifications persists the order and its notifications in a
	// single transactional write: either everything commits or nothing does.
	CreateWithNotifications(ctx context.Context, order *entity.Order, notifications []*entity.Notification) error

	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error)

	// UpdateStatus re-reads the order inside a transaction, applies mutate,
	// bumps the version and refreshes updatedAt before writing. A non-nil
	// error from mutate aborts the transaction with the document unchanged.
	UpdateStatus(ctx context.Context, id string, mutate func(*entity.Order) error) (*entity.Order, error)
}

type ListingOrderRepository interface {
	CreateWithNotifications(ctx context.Context, order *entity.ListingOrder, notifications []*entity.Notification) error

	GetByID(ctx context.Context, id string) (*entity.ListingOrder, error)
	ListByListing(ctx context.Context, listingID string) ([]*entity.ListingOrder, error)
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.ListingOrder, int64, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.ListingOrder, int64, error)

	UpdateStatus(ctx context.Context, id string, mutate func(*entity.ListingOrder) error) (*entity.ListingOrder, error)
}
