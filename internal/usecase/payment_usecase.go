package usecase

import (
	"context"

	"magicwheel/internal/domain/repository"
	"magicwheel/internal/domain/service"
	"magicwheel/pkg/errors"
	"magicwheel/pkg/logger"
)

type PaymentUseCase struct {
	paymentService service.PaymentService
	userRepo       repository.UserRepository
	currency       string
}

func NewPaymentUseCase(
	paymentService service.PaymentService,
	userRepo repository.UserRepository,
	currency string,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentService: paymentService,
		userRepo:       userRepo,
		currency:       currency,
	}
}

func (u *PaymentUseCase) PublishableKey() string {
	return u.paymentService.PublishableKey()
}

// CreatePaymentSheet asks the processor for everything the client payment UI
// needs. The processor customer is keyed by the buyer's email; the returned
// customer id is remembered on the profile the first time it appears.
func (u *PaymentUseCase) CreatePaymentSheet(ctx context.Context, uid string, amount int64) (*service.PaymentSheet, error) {
	if amount <= 0 {
		return nil, errors.BadRequest("amount must be a positive number of minor units", nil)
	}

	user, err := u.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	sheet, err := u.paymentService.CreatePaymentSheet(ctx, service.PaymentSheetRequest{
		Email:    user.Email,
		Amount:   amount,
		Currency: u.currency,
	})
	if err != nil {
		return nil, errors.Internal("Failed to create payment sheet", err)
	}

	if user.PaymentCustomerID == "" {
		user.PaymentCustomerID = sheet.CustomerID
		if err := u.userRepo.Update(ctx, user); err != nil {
			logger.Warn("Failed to store processor customer id for %s: %v", uid, err)
		}
	}

	return sheet, nil
}
