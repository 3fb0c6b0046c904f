package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account document. PasswordHash is redacted at the serialization
// boundary so no user-returning endpoint can ever leak it.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Name         string             `json:"name,omitempty" bson:"name,omitempty"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
}
