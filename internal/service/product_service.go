package service

import (
	"context"
	"fmt"

	"github.com/MrityunjayMaharana/Vendor-App/internal/domain"
	"github.com/MrityunjayMaharana/Vendor-App/internal/dto"
	"github.com/MrityunjayMaharana/Vendor-App/internal/infrastructure/filestore"
	"github.com/MrityunjayMaharana/Vendor-App/internal/repository"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	fileStore   filestore.FileStore
}

func CreateNewProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository, fileStore filestore.FileStore) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, userRepo: userRepo, fileStore: fileStore}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest) (respPayload dto.ProductResponse, err error) {
	if payload.ProductName == "" || payload.Category == "" || payload.Description == "" || payload.Thumbnail == nil || len(payload.Thumbnail.Data) == 0 {
		return respPayload, errs.ErrFillAllFields
	}

	if !domain.IsValidCategory(payload.Category) {
		return respPayload, errs.ErrInvalidCategory
	}

	filename, err := s.fileStore.Save(payload.Thumbnail.Data, payload.Thumbnail.Name, filestore.MaxThumbnailSize)
	if err != nil {
		return
	}

	vendor, err := s.userRepo.GetUserByID(ctx, payload.VendorID)
	if err != nil {
		return
	}

	// Shop name and contact are snapshots of the vendor at creation time.
	// They are not re-synced when the vendor later edits their profile.
	productID, err := s.productRepo.AddProduct(ctx, domain.Product{
		ProductName: payload.ProductName,
		Category:    payload.Category,
		Description: payload.Description,
		Price:       payload.Price,
		Thumbnail:   filename,
		Vendor:      vendor.ID,
		ShopName:    vendor.ShopName,
		Contact:     vendor.Contact,
	})
	if err != nil {
		return
	}

	// Read-then-write count maintenance, last write wins.
	err = s.userRepo.UpdateUserProductCount(ctx, payload.VendorID, vendor.Products+1)
	if err != nil {
		return
	}

	product, err := s.productRepo.GetProductByID(ctx, productID.Hex())
	if err != nil {
		return
	}

	return toProductResponse(product), nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (respPayload []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return
	}

	return toProductResponses(products), nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id string) (respPayload dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(product), nil
}

func (s *ProductServiceImpl) GetProductsByCategory(ctx context.Context, category string) (respPayload []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProductsByCategory(ctx, category)
	if err != nil {
		return
	}

	return toProductResponses(products), nil
}

func (s *ProductServiceImpl) GetProductsByVendor(ctx context.Context, vendorID string) (respPayload []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProductsByVendor(ctx, vendorID)
	if err != nil {
		return
	}

	return toProductResponses(products), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, payload dto.ProductRequest) (respPayload dto.ProductResponse, err error) {
	if payload.ProductName == "" || payload.Category == "" || len(payload.Description) < 12 {
		return respPayload, errs.ErrFillAllFields
	}

	product, err := s.productRepo.GetProductByID(ctx, payload.ID)
	if err != nil {
		return
	}

	if product.Vendor.Hex() != payload.VendorID {
		return respPayload, errs.ErrNoPermission
	}

	if payload.Thumbnail != nil && len(payload.Thumbnail.Data) > 0 {
		// The superseded thumbnail file is intentionally left in place.
		filename, saveErr := s.fileStore.Save(payload.Thumbnail.Data, payload.Thumbnail.Name, filestore.MaxThumbnailSize)
		if saveErr != nil {
			return respPayload, saveErr
		}
		product.Thumbnail = filename
	}

	product.ProductName = payload.ProductName
	product.Category = payload.Category
	product.Description = payload.Description

	err = s.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		return
	}

	product, err = s.productRepo.GetProductByID(ctx, payload.ID)
	if err != nil {
		return
	}

	return toProductResponse(product), nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string, requesterID string) (message string, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if product.Vendor.Hex() != requesterID {
		return message, errs.ErrNoPermission
	}

	// The record is only removed once the thumbnail file is gone. A failed
	// file removal aborts the whole operation and the record survives.
	err = s.fileStore.Remove(product.Thumbnail)
	if err != nil {
		return
	}

	err = s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	vendor, vendorErr := s.userRepo.GetUserByID(ctx, requesterID)
	if vendorErr != nil {
		log.Error().Err(vendorErr).Str("component", "DeleteProduct").Msg("vendor lookup failed, product count not adjusted")
	} else {
		if countErr := s.userRepo.UpdateUserProductCount(ctx, requesterID, vendor.Products-1); countErr != nil {
			log.Error().Err(countErr).Str("component", "DeleteProduct").Msg("product count not adjusted")
		}
	}

	return fmt.Sprintf("Product %s deleted successfully.", id), nil
}

func toProductResponse(product domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID.Hex(),
		ProductName: product.ProductName,
		Category:    product.Category,
		Description: product.Description,
		Price:       product.Price,
		Thumbnail:   product.Thumbnail,
		Vendor:      product.Vendor.Hex(),
		ShopName:    product.ShopName,
		Contact:     product.Contact,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []dto.ProductResponse {
	respPayload := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		respPayload = append(respPayload, toProductResponse(product))
	}

	return respPayload
}
