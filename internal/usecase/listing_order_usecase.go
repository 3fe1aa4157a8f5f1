package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	"magicwheel/pkg/errors"
	"magicwheel/pkg/logger"
)

type ListingOrderUseCase struct {
	orderRepo repository.ListingOrderRepository
	userRepo  repository.UserRepository
	pusher    EventPusher
	currency  string
}

func NewListingOrderUseCase(
	orderRepo repository.ListingOrderRepository,
	userRepo repository.UserRepository,
	pusher EventPusher,
	currency string,
) *ListingOrderUseCase {
	return &ListingOrderUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		pusher:    pusher,
		currency:  currency,
	}
}

type OrderItemInput struct {
	ProductID string
	Name      string
	UnitPrice float64
	Quantity  int
}

type CreateListingOrderInput struct {
	SellerID  string
	ListingID string
	Items     []OrderItemInput
	Shipping  entity.ShippingAddress
	Phone     string
	Payment   entity.PaymentDetails
}

// Create places a peer-to-peer order. The order id is generated here, before
// the write, so callers can reference it immediately. The order document and
// both notifications commit in one transaction; either everything is
// observable or nothing is.
func (u *ListingOrderUseCase) Create(ctx context.Context, buyerID string, input CreateListingOrderInput) (*entity.ListingOrder, error) {
	buyer, err := u.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	seller, err := u.userRepo.GetByID(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}

	var total float64
	items := make([]entity.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
		total += item.UnitPrice * float64(item.Quantity)
	}

	order := &entity.ListingOrder{
		ID:          uuid.New().String(),
		BuyerID:     buyer.ID,
		SellerID:    seller.ID,
		ListingID:   input.ListingID,
		Items:       items,
		TotalAmount: total,
		Currency:    u.currency,
		Shipping:    input.Shipping,
		Phone:       input.Phone,
		Payment:     input.Payment,
		Status:      entity.StatusPending,
	}

	notifications := []*entity.Notification{
		{
			UserID: buyer.ID,
			Message: fmt.Sprintf("Thanks %s! Your order %s for %s %.2f has been placed.",
				buyer.Username, order.ID, strings.ToUpper(u.currency), total),
			Type:  "order",
			Icon:  "cart",
			Color: "#4caf50",
		},
		{
			UserID: seller.ID,
			Message: fmt.Sprintf("%s, you have a new sale! Order %s for %s %.2f.",
				seller.Username, order.ID, strings.ToUpper(u.currency), total),
			Type:  "sale",
			Icon:  "cash",
			Color: "#2196f3",
		},
	}

	if err := u.orderRepo.CreateWithNotifications(ctx, order, notifications); err != nil {
		return nil, err
	}

	for _, n := range notifications {
		u.pusher.SendEvent(n.UserID, "notification", n)
	}

	logger.Info("Listing order %s placed by %s for listing %s", order.ID, buyer.ID, input.ListingID)
	return order, nil
}

type StatusChangeInput struct {
	NewStatus   entity.OrderStatus
	CourierName string
	TrackingID  string

	// ExpectedVersion, when set, turns the update into a compare-and-swap:
	// a stale version fails with Conflict instead of silently overwriting.
	ExpectedVersion *int64
}

// RequestStatusChange moves an order through the forward-only lifecycle.
// Closed orders reject everything; shipping demands courier details.
func (u *ListingOrderUseCase) RequestStatusChange(ctx context.Context, orderID string, input StatusChangeInput) (*entity.ListingOrder, error) {
	if !input.NewStatus.Valid() {
		return nil, errors.BadRequest(fmt.Sprintf("unknown order status %q", input.NewStatus), nil)
	}

	return u.orderRepo.UpdateStatus(ctx, orderID, func(order *entity.ListingOrder) error {
		if order.Terminal {
			return errors.InvalidState("order is closed and cannot change status", nil)
		}

		if input.ExpectedVersion != nil && *input.ExpectedVersion != order.Version {
			return errors.Conflict(fmt.Sprintf("order version changed (expected %d, have %d)",
				*input.ExpectedVersion, order.Version), nil)
		}

		if !order.Status.CanTransitionTo(input.NewStatus) {
			return errors.InvalidState(fmt.Sprintf("cannot move order from %s to %s",
				order.Status, input.NewStatus), nil)
		}

		switch input.NewStatus {
		case entity.StatusShipped:
			courier := strings.TrimSpace(input.CourierName)
			tracking := strings.TrimSpace(input.TrackingID)
			if courier == "" || tracking == "" {
				return errors.BadRequest("courier name and tracking id are required to ship an order", nil)
			}
			order.CourierName = courier
			order.TrackingID = tracking
			shippedAt := time.Now()
			order.ShippedAt = &shippedAt

		case entity.StatusDelivered, entity.StatusCancelled:
			order.Terminal = true
		}

		order.Status = input.NewStatus
		return nil
	})
}

// ListForListing is a read-only projection; an empty slice means "no orders
// yet" and is not an error.
func (u *ListingOrderUseCase) ListForListing(ctx context.Context, listingID string) ([]*entity.ListingOrder, error) {
	return u.orderRepo.ListByListing(ctx, listingID)
}

func (u *ListingOrderUseCase) ListForBuyer(ctx context.Context, buyerID string, page, pageSize int) ([]*entity.ListingOrder, int64, error) {
	offset := (page - 1) * pageSize
	return u.orderRepo.ListByBuyer(ctx, buyerID, pageSize, offset)
}

func (u *ListingOrderUseCase) ListForSeller(ctx context.Context, sellerID string, page, pageSize int) ([]*entity.ListingOrder, int64, error) {
	offset := (page - 1) * pageSize
	return u.orderRepo.ListBySeller(ctx, sellerID, pageSize, offset)
}

// Get is scoped to the order's participants.
func (u *ListingOrderUseCase) Get(ctx context.Context, callerID, orderID string) (*entity.ListingOrder, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID && order.SellerID != callerID {
		return nil, errors.Forbidden("you are not a participant of this order", nil)
	}

	return order, nil
}
