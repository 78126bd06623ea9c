package service

import (
	"context"

	"github.com/MrityunjayMaharana/Vendor-App/internal/dto"
)

type UserService interface {
	Register(ctx context.Context, data dto.RegisterRequest) (err error)
	Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error)
	GetUser(ctx context.Context, id string) (respPayload dto.UserResponse, err error)
	GetVendors(ctx context.Context) (respPayload []dto.UserResponse, err error)
	ChangeAvatar(ctx context.Context, userID string, file *dto.FileUpload) (respPayload dto.UserResponse, err error)
	EditUser(ctx context.Context, payload dto.EditUserRequest) (respPayload dto.UserResponse, err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, payload dto.ProductRequest) (respPayload dto.ProductResponse, err error)
	GetProducts(ctx context.Context) (respPayload []dto.ProductResponse, err error)
	GetProduct(ctx context.Context, id string) (respPayload dto.ProductResponse, err error)
	GetProductsByCategory(ctx context.Context, category string) (respPayload []dto.ProductResponse, err error)
	GetProductsByVendor(ctx context.Context, vendorID string) (respPayload []dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, payload dto.ProductRequest) (respPayload dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string, requesterID string) (message string, err error)
}
