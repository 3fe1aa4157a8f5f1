package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() (*CatalogUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeWishlistRepo) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	wishlistRepo := newFakeWishlistRepo()
	return NewCatalogUseCase(productRepo, categoryRepo, wishlistRepo), productRepo, categoryRepo, wishlistRepo
}

func TestCreateProductSnapshotsCategory(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	category, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Handicrafts"})
	require.NoError(t, err)

	product, err := uc.CreateProduct(ctx, CreateProductInput{
		Name:       "Brass lamp",
		Price:      800,
		CategoryID: category.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, category.ID, product.Category.ID)
	assert.Equal(t, "Handicrafts", product.Category.Name)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()

	_, err := uc.CreateProduct(context.Background(), CreateProductInput{
		Name:       "Brass lamp",
		CategoryID: "missing",
	})

	require.Error(t, err)
}

func TestCategoryRenameLeavesSnapshotsStale(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	category, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Handicrafts"})
	require.NoError(t, err)

	product, err := uc.CreateProduct(ctx, CreateProductInput{Name: "Brass lamp", CategoryID: category.ID})
	require.NoError(t, err)

	_, err = uc.UpdateCategory(ctx, category.ID, CreateCategoryInput{Name: "Artisan Goods"})
	require.NoError(t, err)

	// The rename alone does not rewrite embedded snapshots.
	got, err := uc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Handicrafts", got.Category.Name)
}

func TestSyncCategorySnapshotsBackfills(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	category, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Handicrafts"})
	require.NoError(t, err)

	other, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Jewellery"})
	require.NoError(t, err)

	stale, err := uc.CreateProduct(ctx, CreateProductInput{Name: "Brass lamp", CategoryID: category.ID})
	require.NoError(t, err)
	untouched, err := uc.CreateProduct(ctx, CreateProductInput{Name: "Silver ring", CategoryID: other.ID})
	require.NoError(t, err)

	_, err = uc.UpdateCategory(ctx, category.ID, CreateCategoryInput{Name: "Artisan Goods"})
	require.NoError(t, err)

	updated, err := uc.SyncCategorySnapshots(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	got, err := uc.GetProduct(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, "Artisan Goods", got.Category.Name)

	got, err = uc.GetProduct(ctx, untouched.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jewellery", got.Category.Name)
}

func TestUpdateProductResnapshotsOnCategoryChange(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	first, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Handicrafts"})
	require.NoError(t, err)
	second, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Jewellery"})
	require.NoError(t, err)

	product, err := uc.CreateProduct(ctx, CreateProductInput{Name: "Silver ring", CategoryID: first.ID})
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, product.ID, CreateProductInput{
		Name:       "Silver ring",
		CategoryID: second.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.Category.ID)
	assert.Equal(t, "Jewellery", updated.Category.Name)
}

func TestHomeBundle(t *testing.T) {
	uc, _, _, wishlistRepo := newCatalogFixture()
	ctx := context.Background()

	category, err := uc.CreateCategory(ctx, CreateCategoryInput{Name: "Handicrafts"})
	require.NoError(t, err)

	product, err := uc.CreateProduct(ctx, CreateProductInput{Name: "Brass lamp", CategoryID: category.ID})
	require.NoError(t, err)

	wishlistRepo.items["u1"] = []string{product.ID}

	home, err := uc.Home(ctx, "u1")

	require.NoError(t, err)
	assert.Len(t, home.Products, 1)
	assert.Len(t, home.Categories, 1)
	assert.Equal(t, []string{product.ID}, home.Wishlist)
}
