package usecase

import (
	"context"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	"magicwheel/pkg/logger"
)

type CatalogUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	wishlistRepo repository.WishlistRepository
}

func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	wishlistRepo repository.WishlistRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		wishlistRepo: wishlistRepo,
	}
}

type CreateProductInput struct {
	Name         string
	Description  string
	Price        float64
	Image        string
	CountInStock int
	CategoryID   string
}

// CreateProduct embeds an id+name snapshot of the category at creation time.
// The snapshot stays as-is until SyncCategorySnapshots runs.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	category, err := u.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Image:        input.Image,
		CountInStock: input.CountInStock,
		Category: entity.CategorySnapshot{
			ID:   category.ID,
			Name: category.Name,
		},
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, categoryID string, page, pageSize int) ([]*entity.Product, int64, error) {
	offset := (page - 1) * pageSize
	return u.productRepo.List(ctx, categoryID, pageSize, offset)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id string, input CreateProductInput) (*entity.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Image = input.Image
	product.CountInStock = input.CountInStock

	// Re-snapshot only when the product moves to a different category.
	if input.CategoryID != "" && input.CategoryID != product.Category.ID {
		category, err := u.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		product.Category = entity.CategorySnapshot{ID: category.ID, Name: category.Name}
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := u.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return u.productRepo.Delete(ctx, id)
}

type CreateCategoryInput struct {
	Name  string
	Icon  string
	Color string
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:  input.Name,
		Icon:  input.Icon,
		Color: input.Color,
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return u.categoryRepo.List(ctx)
}

// UpdateCategory renames a category without touching product snapshots;
// staleness is resolved by the explicit SyncCategorySnapshots batch.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id string, input CreateCategoryInput) (*entity.Category, error) {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Icon = input.Icon
	category.Color = input.Color

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// SyncCategorySnapshots backfills the embedded category name on every product
// referencing the category. Run on demand after a rename.
func (u *CatalogUseCase) SyncCategorySnapshots(ctx context.Context, categoryID string) (int, error) {
	category, err := u.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return 0, err
	}

	updated, err := u.productRepo.UpdateCategorySnapshots(ctx, category.ID, category.Name)
	if err != nil {
		return updated, err
	}

	logger.Info("Category %s snapshot sync touched %d products", categoryID, updated)
	return updated, nil
}

type HomeBundle struct {
	Products   []*entity.Product  `json:"products"`
	Categories []*entity.Category `json:"categories"`
	Wishlist   []string           `json:"wishlist"`
}

// Home assembles the homepage payload in one response: catalog, categories
// and the caller's wishlisted product ids.
func (u *CatalogUseCase) Home(ctx context.Context, userID string) (*HomeBundle, error) {
	products, _, err := u.productRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}

	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	wishlist, err := u.wishlistRepo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &HomeBundle{
		Products:   products,
		Categories: categories,
		Wishlist:   wishlist,
	}, nil
}
