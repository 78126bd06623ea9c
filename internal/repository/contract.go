package repository

import (
	"context"

	"github.com/MrityunjayMaharana/Vendor-App/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (data domain.User, err error)
	GetUserByID(ctx context.Context, id string) (data domain.User, err error)
	GetUsers(ctx context.Context) (data []domain.User, err error)
	UpdateUserAvatar(ctx context.Context, id string, avatar string) (err error)
	UpdateUserProfile(ctx context.Context, data domain.User) (err error)
	UpdateUserProductCount(ctx context.Context, id string, count int64) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProductsByCategory(ctx context.Context, category string) (data []domain.Product, err error)
	GetProductsByVendor(ctx context.Context, vendorID string) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}
