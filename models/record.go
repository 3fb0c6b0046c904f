package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record is one sensor reading: a value of some metric measured at a named
// location at a point in time. Location is a free-text label, not a reference
// to a farm document.
type Record struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Location   string             `json:"location" bson:"location"`
	Datetime   time.Time          `json:"datetime" bson:"datetime"`
	SensorType string             `json:"sensorType" bson:"sensorType"`
	Value      float64            `json:"value" bson:"value"`
}
