package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/thirteen-hero/myCats-server/internal/product/entity"
)

// ProductRepo reads the products collection.
type ProductRepo struct {
	coll *mongo.Collection
}

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection("products")}
}

// EnsureIndexes creates the category index (idempotent).
func (r *ProductRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	return err
}

func filterFor(category int) bson.M {
	if category == 0 {
		return bson.M{}
	}
	return bson.M{"category": category}
}

func (r *ProductRepo) Count(ctx context.Context, category int) (int64, error) {
	return r.coll.CountDocuments(ctx, filterFor(category))
}

func (r *ProductRepo) List(ctx context.Context, category int, offset, limit int64) ([]entity.Product, error) {
	cur, err := r.coll.Find(ctx, filterFor(category), options.Find().SetSkip(offset).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []entity.Product
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
