package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Farm is one farm document. Geometry holds latitude and longitude as given;
// length and range are not validated.
type Farm struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Address  string             `json:"address,omitempty" bson:"address,omitempty"`
	Owner    string             `json:"owner,omitempty" bson:"owner,omitempty"`
	Geometry []float64          `json:"geometry,omitempty" bson:"geometry,omitempty"`
}
