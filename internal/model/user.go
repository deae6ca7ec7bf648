package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account. The password hash is never serialized
// into API responses.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"_id"`
	Name         string        `bson:"name"           json:"name"`
	Email        string        `bson:"email"          json:"email"`
	PasswordHash string        `bson:"password_hash"  json:"-"`
	Avatar       string        `bson:"avatar"         json:"avatar"`
	CreatedAt    time.Time     `bson:"created_at"     json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"updated_at"`
}
