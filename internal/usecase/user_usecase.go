package usecase

import (
	"context"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	apperrors "magicwheel/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type RegisterInput struct {
	Email    string
	Username string
	Phone    string
}

// Register creates the profile document for an externally-authenticated uid.
// Registering an existing uid returns the stored profile unchanged.
func (u *UserUseCase) Register(ctx context.Context, uid string, input RegisterInput) (*entity.User, error) {
	existing, err := u.userRepo.GetByID(ctx, uid)
	if err == nil {
		return existing, nil
	}
	if !apperrors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user := &entity.User{
		ID:       uid,
		Email:    input.Email,
		Username: input.Username,
		Phone:    input.Phone,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *UserUseCase) Get(ctx context.Context, uid string) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, uid)
}

func (u *UserUseCase) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.userRepo.GetByEmail(ctx, email)
}

func (u *UserUseCase) UpdateShipping(ctx context.Context, uid string, shipping entity.ShippingAddress) (*entity.User, error) {
	user, err := u.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	user.Shipping = shipping

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
