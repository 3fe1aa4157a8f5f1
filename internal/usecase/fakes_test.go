package usecase

import (
	"context"
	"fmt"
	"time"

	"magicwheel/internal/domain/entity"
	"magicwheel/pkg/errors"
)

// In-memory fakes mirroring the Firestore repository semantics closely
// enough for use case tests: NotFound on missing documents, version bumps on
// status updates, and mutate-aborts leaving the stored document untouched.

type pushedEvent struct {
	UserID  string
	Type    string
	Payload interface{}
}

type fakePusher struct {
	events []pushedEvent
}

func (p *fakePusher) SendEvent(userID string, eventType string, payload interface{}) {
	p.events = append(p.events, pushedEvent{UserID: userID, Type: eventType, Payload: payload})
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

type fakeListingOrderRepo struct {
	orders        map[string]*entity.ListingOrder
	notifications []*entity.Notification
	seq           int
}

func newFakeListingOrderRepo() *fakeListingOrderRepo {
	return &fakeListingOrderRepo{orders: map[string]*entity.ListingOrder{}}
}

func (r *fakeListingOrderRepo) CreateWithNotifications(ctx context.Context, order *entity.ListingOrder, notifications []*entity.Notification) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	stored := *order
	r.orders[order.ID] = &stored

	for _, n := range notifications {
		r.seq++
		n.ID = fmt.Sprintf("n%d", r.seq)
		n.CreatedAt = now
		r.notifications = append(r.notifications, n)
	}
	return nil
}

func (r *fakeListingOrderRepo) GetByID(ctx context.Context, id string) (*entity.ListingOrder, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	copied := *order
	return &copied, nil
}

func (r *fakeListingOrderRepo) ListByListing(ctx context.Context, listingID string) ([]*entity.ListingOrder, error) {
	result := []*entity.ListingOrder{}
	for _, order := range r.orders {
		if order.ListingID == listingID {
			copied := *order
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeListingOrderRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.ListingOrder, int64, error) {
	result := []*entity.ListingOrder{}
	for _, order := range r.orders {
		if order.BuyerID == buyerID {
			copied := *order
			result = append(result, &copied)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeListingOrderRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.ListingOrder, int64, error) {
	result := []*entity.ListingOrder{}
	for _, order := range r.orders {
		if order.SellerID == sellerID {
			copied := *order
			result = append(result, &copied)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeListingOrderRepo) UpdateStatus(ctx context.Context, id string, mutate func(*entity.ListingOrder) error) (*entity.ListingOrder, error) {
	stored, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}

	order := *stored
	if err := mutate(&order); err != nil {
		return nil, err
	}

	order.Version++
	order.UpdatedAt = time.Now()
	r.orders[id] = &order

	copied := order
	return &copied, nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	seq           int
}

func (r *fakeNotificationRepo) Append(ctx context.Context, notification *entity.Notification) error {
	r.seq++
	notification.ID = fmt.Sprintf("n%d", r.seq)
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	result := []*entity.Notification{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) error {
	for _, n := range r.notifications {
		if n.ID == notificationID && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

type fakeWishlistRepo struct {
	items map[string][]string
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: map[string][]string{}}
}

func (r *fakeWishlistRepo) Add(ctx context.Context, item *entity.WishlistItem) error {
	for _, id := range r.items[item.UserID] {
		if id == item.ProductID {
			return nil
		}
	}
	r.items[item.UserID] = append(r.items[item.UserID], item.ProductID)
	return nil
}

func (r *fakeWishlistRepo) Remove(ctx context.Context, userID, productID string) error {
	ids := r.items[userID]
	for i, id := range ids {
		if id == productID {
			r.items[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Wishlist item", nil)
}

func (r *fakeWishlistRepo) Exists(ctx context.Context, userID, productID string) (bool, error) {
	for _, id := range r.items[userID] {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWishlistRepo) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	ids := r.items[userID]
	if ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	order    []string
	seq      int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.seq++
		product.ID = fmt.Sprintf("p%d", r.seq)
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	result := []*entity.Product{}
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) List(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, int64, error) {
	result := []*entity.Product{}
	for _, id := range r.order {
		product := r.products[id]
		if categoryID == "" || product.Category.ID == categoryID {
			result = append(result, product)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) UpdateCategorySnapshots(ctx context.Context, categoryID, name string) (int, error) {
	updated := 0
	for _, product := range r.products {
		if product.Category.ID == categoryID && product.Category.Name != name {
			product.Category.Name = name
			updated++
		}
	}
	return updated, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	seq        int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		r.seq++
		category.ID = fmt.Sprintf("c%d", r.seq)
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	result := []*entity.Category{}
	for _, category := range r.categories {
		result = append(result, category)
	}
	return result, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return errors.NotFound("Category", nil)
	}
	category.UpdatedAt = time.Now()
	r.categories[category.ID] = category
	return nil
}
