package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	"magicwheel/pkg/errors"
	"magicwheel/pkg/logger"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	pusher    EventPusher
	currency  string
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	pusher EventPusher,
	currency string,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		pusher:    pusher,
		currency:  currency,
	}
}

type CreateOrderInput struct {
	Items    []OrderItemInput
	Shipping entity.ShippingAddress
	Phone    string
	Payment  entity.PaymentDetails
}

// Create places a platform-catalog order and notifies the buyer. Payment
// authorization has already happened upstream; this only records the result.
func (u *OrderUseCase) Create(ctx context.Context, buyerID string, input CreateOrderInput) (*entity.Order, error) {
	buyer, err := u.userRepo.GetByID(ctx, buyerID)
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

	order := &entity.Order{
		ID:          uuid.New().String(),
		BuyerID:     buyer.ID,
		Items:       items,
		TotalAmount: total,
		Currency:    u.currency,
		Shipping:    input.Shipping,
		Phone:       input.Phone,
		Payment:     input.Payment,
		Status:      entity.StatusPending,
	}

	notification := &entity.Notification{
		UserID: buyer.ID,
		Message: fmt.Sprintf("Thanks %s! Your order %s for %s %.2f has been placed.",
			buyer.Username, order.ID, strings.ToUpper(u.currency), total),
		Type:  "order",
		Icon:  "cart",
		Color: "#4caf50",
	}

	if err := u.orderRepo.CreateWithNotifications(ctx, order, []*entity.Notification{notification}); err != nil {
		return nil, err
	}

	u.pusher.SendEvent(buyer.ID, "notification", notification)

	logger.Info("Order %s placed by %s, total %.2f", order.ID, buyer.ID, total)
	return order, nil
}

func (u *OrderUseCase) ListForBuyer(ctx context.Context, buyerID string, page, pageSize int) ([]*entity.Order, int64, error) {
	offset := (page - 1) * pageSize
	return u.orderRepo.ListByBuyer(ctx, buyerID, pageSize, offset)
}

func (u *OrderUseCase) Get(ctx context.Context, callerID, orderID string) (*entity.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID {
		return nil, errors.Forbidden("you are not the owner of this order", nil)
	}

	return order, nil
}

// RequestStatusChange applies the same forward-only lifecycle as listing
// orders; platform fulfilment has no courier sub-lifecycle.
func (u *OrderUseCase) RequestStatusChange(ctx context.Context, orderID string, newStatus entity.OrderStatus, expectedVersion *int64) (*entity.Order, error) {
	if !newStatus.Valid() {
		return nil, errors.BadRequest(fmt.Sprintf("unknown order status %q", newStatus), nil)
	}

	return u.orderRepo.UpdateStatus(ctx, orderID, func(order *entity.Order) error {
		if order.Terminal {
			return errors.InvalidState("order is closed and cannot change status", nil)
		}

		if expectedVersion != nil && *expectedVersion != order.Version {
			return errors.Conflict(fmt.Sprintf("order version changed (expected %d, have %d)",
				*expectedVersion, order.Version), nil)
		}

		if !order.Status.CanTransitionTo(newStatus) {
			return errors.InvalidState(fmt.Sprintf("cannot move order from %s to %s",
				order.Status, newStatus), nil)
		}

		if newStatus.IsTerminal() {
			order.Terminal = true
		}
		order.Status = newStatus
		return nil
	})
}
