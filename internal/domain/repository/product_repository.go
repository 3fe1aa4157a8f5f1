package repository

import (
	"context"

	"magicwheel/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	List(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// UpdateCategorySnapshots rewrites the embedded category name on every
	// product referencing categoryID and returns how many were touched.
	UpdateCategorySnapshots(ctx context.Context, categoryID, name string) (int, error)
}
