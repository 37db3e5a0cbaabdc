package entity

import "go.mongodb.org/mongo-driver/v2/bson"

// Slider is a homepage carousel document in the `sliders` collection.
type Slider struct {
	ID  bson.ObjectID `bson:"_id,omitempty" json:"id"`
	URL string        `bson:"url" json:"url"`
}
