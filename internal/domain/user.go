package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	ShopName       string             `bson:"shopName"`
	Location       string             `bson:"location"`
	Contact        int64              `bson:"contact"`
	HashedPassword string             `bson:"password"`
	Avatar         string             `bson:"avatar,omitempty"`
	Products       int64              `bson:"products"`
}
