package repository

import (
	"context"
	"time"

	"github.com/MrityunjayMaharana/Vendor-App/internal/domain"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	timestamp := time.Now()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	id = result.InsertedID.(primitive.ObjectID)
	return
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, bson.D{}, findOptions)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrProductNotFound
	}

	err = r.db.Collection("products").FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrInternalServer
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByCategory(ctx context.Context, category string) (data []domain.Product, err error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, bson.M{"category": category}, findOptions)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
		return nil, errs.ErrInternalServer
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByVendor(ctx context.Context, vendorID string) (data []domain.Product, err error) {
	objectID, err := primitive.ObjectIDFromHex(vendorID)
	if err != nil {
		return nil, errs.ErrUserNotFound
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, bson.M{"vendor": objectID}, findOptions)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByVendor").Msg("")
		return nil, errs.ErrInternalServer
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Error().Err(err).Str("component", "GetProductsByVendor").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "productName", Value: data.ProductName},
		{Key: "category", Value: data.Category},
		{Key: "description", Value: data.Description},
		{Key: "thumbnail", Value: data.Thumbnail},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrInternalServer
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}

	result, err := r.db.Collection("products").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrInternalServer
	}

	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}

	return
}
