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
	"magicwheel/pkg/logger"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{client: client}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

// GetByIDs batch-fetches products, skipping ids that no longer resolve.
// Firestore caps GetAll batches at 30 document refs.
func (r *firestoreProductRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	var products []*entity.Product

	for i := 0; i < len(ids); i += 30 {
		end := i + 30
		if end > len(ids) {
			end = len(ids)
		}

		batch := ids[i:end]
		docRefs := make([]*firestore.DocumentRef, len(batch))
		for j, id := range batch {
			docRefs[j] = r.client.Collection("products").Doc(id)
		}

		docs, err := r.client.GetAll(ctx, docRefs)
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch products", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				logger.Warn("Skipping unparseable product %s: %v", doc.Ref.ID, err)
				continue
			}
			products = append(products, &product)
		}
	}

	return products, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").Query
	if categoryID != "" {
		query = query.Where("category.id", "==", categoryID)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count products", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, total, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

// UpdateCategorySnapshots is the explicit backfill for renamed categories:
// products keep their creation-time snapshot until this runs.
func (r *firestoreProductRepository) UpdateCategorySnapshots(ctx context.Context, categoryID, name string) (int, error) {
	iter := r.client.Collection("products").Where("category.id", "==", categoryID).Documents(ctx)

	updated := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return updated, errors.Internal("Failed to iterate products for backfill", err)
		}

		_, err = doc.Ref.Update(ctx, []firestore.Update{
			{Path: "category.name", Value: name},
			{Path: "updatedAt", Value: time.Now()},
		})
		if err != nil {
			return updated, errors.Internal("Failed to update category snapshot", err)
		}
		updated++
	}

	logger.Info("Backfilled category snapshot for %d products (category %s)", updated, categoryID)
	return updated, nil
}
