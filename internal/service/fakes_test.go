package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MrityunjayMaharana/Vendor-App/internal/domain"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories mirroring the behavior of the MongoDB
// implementations, including sort orders and not-found mapping.

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[primitive.ObjectID]domain.User{}}
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data.ID = primitive.NewObjectID()
	r.users[data.ID] = data
	return data.ID, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.User{}, errs.ErrUserNotFound
	}

	user, ok := r.users[objectID]
	if !ok {
		return domain.User{}, errs.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		data = append(data, user)
	}
	return data, nil
}

func (r *fakeUserRepository) UpdateUserAvatar(ctx context.Context, id string, avatar string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrUserNotFound
	}

	user, ok := r.users[objectID]
	if !ok {
		return errs.ErrUserNotFound
	}

	user.Avatar = avatar
	r.users[objectID] = user
	return nil
}

func (r *fakeUserRepository) UpdateUserProfile(ctx context.Context, data domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[data.ID]
	if !ok {
		return errs.ErrUserNotFound
	}

	stored.Name = data.Name
	stored.Email = data.Email
	stored.ShopName = data.ShopName
	stored.Location = data.Location
	stored.Contact = data.Contact
	stored.HashedPassword = data.HashedPassword
	r.users[data.ID] = stored
	return nil
}

func (r *fakeUserRepository) UpdateUserProductCount(ctx context.Context, id string, count int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrUserNotFound
	}

	user, ok := r.users[objectID]
	if !ok {
		return nil
	}

	user.Products = count
	r.users[objectID] = user
	return nil
}

type fakeProductRepository struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]domain.Product
	clock    time.Time
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{
		products: map[primitive.ObjectID]domain.Product{},
		clock:    time.Now(),
	}
}

// tick hands out strictly increasing timestamps so sort orders are stable.
func (r *fakeProductRepository) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.tick()
	data.ID = primitive.NewObjectID()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp
	r.products[data.ID] = data
	return data.ID, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.collect(func(domain.Product) bool { return true })
	sort.Slice(data, func(i, j int) bool { return data[i].UpdatedAt.After(data[j].UpdatedAt) })
	return data, nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Product{}, errs.ErrProductNotFound
	}

	product, ok := r.products[objectID]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepository) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.collect(func(p domain.Product) bool { return p.Category == category })
	sort.Slice(data, func(i, j int) bool { return data[i].CreatedAt.After(data[j].CreatedAt) })
	return data, nil
}

func (r *fakeProductRepository) GetProductsByVendor(ctx context.Context, vendorID string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, err := primitive.ObjectIDFromHex(vendorID)
	if err != nil {
		return nil, errs.ErrUserNotFound
	}

	data := r.collect(func(p domain.Product) bool { return p.Vendor == objectID })
	sort.Slice(data, func(i, j int) bool { return data[i].CreatedAt.After(data[j].CreatedAt) })
	return data, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[data.ID]
	if !ok {
		return errs.ErrProductNotFound
	}

	stored.ProductName = data.ProductName
	stored.Category = data.Category
	stored.Description = data.Description
	stored.Thumbnail = data.Thumbnail
	stored.UpdatedAt = r.tick()
	r.products[data.ID] = stored
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}

	if _, ok := r.products[objectID]; !ok {
		return errs.ErrProductNotFound
	}

	delete(r.products, objectID)
	return nil
}

func (r *fakeProductRepository) collect(match func(domain.Product) bool) []domain.Product {
	data := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if match(product) {
			data = append(data, product)
		}
	}
	return data
}
