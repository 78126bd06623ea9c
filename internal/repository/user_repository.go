package repository

import (
	"context"

	"github.com/MrityunjayMaharana/Vendor-App/internal/domain"
	"github.com/MrityunjayMaharana/Vendor-App/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	id = result.InsertedID.(primitive.ObjectID)
	return
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (data domain.User, err error) {
	err = r.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id string) (data domain.User, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return data, errs.ErrUserNotFound
	}

	err = r.db.Collection("users").FindOne(ctx, bson.M{"_id": objectID}).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrUserNotFound
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context) (data []domain.User, err error) {
	cursor, err := r.db.Collection("users").Find(ctx, bson.D{})
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, errs.ErrInternalServer
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *MongoDBUserRepositoryImpl) UpdateUserAvatar(ctx context.Context, id string, avatar string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrUserNotFound
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"avatar": avatar}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUserAvatar").Msg("")
		return errs.ErrInternalServer
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) UpdateUserProfile(ctx context.Context, data domain.User) (err error) {
	filter := bson.M{"_id": data.ID}
	update := bson.M{"$set": bson.M{
		"name":     data.Name,
		"email":    data.Email,
		"shopName": data.ShopName,
		"location": data.Location,
		"contact":  data.Contact,
		"password": data.HashedPassword,
	}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUserProfile").Msg("")
		return errs.ErrInternalServer
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) UpdateUserProductCount(ctx context.Context, id string, count int64) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrUserNotFound
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{"products": count}}

	_, err = r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUserProductCount").Msg("")
		return errs.ErrInternalServer
	}

	return
}
