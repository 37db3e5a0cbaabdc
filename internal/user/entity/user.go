package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account document in the `users` collection. Password holds the
// bcrypt hash, never the plaintext; outward serialization goes through Public.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Username  string        `bson:"username"`
	Password  string        `bson:"password"`
	Email     string        `bson:"email"`
	Avatar    string        `bson:"avatar,omitempty"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// PublicUser is the external representation of a User. It has no password
// field at all, so it cannot leak one.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public projects the user for the API boundary, flattening the store id to
// a hex string and stripping the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
