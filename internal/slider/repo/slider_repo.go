package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/thirteen-hero/myCats-server/internal/slider/entity"
)

// SliderRepo reads the sliders collection.
type SliderRepo struct {
	coll *mongo.Collection
}

func NewSliderRepo(db *mongo.Database) *SliderRepo {
	return &SliderRepo{coll: db.Collection("sliders")}
}

// FindAll returns every slider in natural order.
func (r *SliderRepo) FindAll(ctx context.Context) ([]entity.Slider, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []entity.Slider
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
