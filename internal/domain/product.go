package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductName string             `bson:"productName"`
	Category    string             `bson:"category"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Thumbnail   string             `bson:"thumbnail"`
	Vendor      primitive.ObjectID `bson:"vendor"`
	ShopName    string             `bson:"shopName"`
	Contact     int64              `bson:"contact"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

var categories = map[string]struct{}{
	"Gadget":      {},
	"Electronic":  {},
	"Stationary":  {},
	"Groceries":   {},
	"Gift":        {},
	"Accessories": {},
	"Game":        {},
	"Fashion":     {},
}

func IsValidCategory(category string) bool {
	_, ok := categories[category]
	return ok
}
