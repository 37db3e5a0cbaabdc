package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product is a catalog document in the `products` collection.
type Product struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Order     int           `bson:"order" json:"order"`
	Title     string        `bson:"title" json:"title"`
	Video     string        `bson:"video" json:"video"`
	Poster    string        `bson:"poster" json:"poster"`
	URL       string        `bson:"url" json:"url"`
	Price     string        `bson:"price" json:"price"`
	Category  int           `bson:"category" json:"category"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}
