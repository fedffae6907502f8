package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account document stored in the "Users" collection.
// PasswordHash must never leave the trusted boundary: it is excluded from JSON
// serialization and the graph layer strips it by construction.
type User struct {
	// ID is the internal unique identifier assigned by the store.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	// Name is the display name of the user.
	Name string `bson:"name" json:"name"`

	// Email is the unique login identifier used during authentication.
	Email string `bson:"email" json:"email"`

	// Avatar is an optional URL to the user's avatar image.
	Avatar *string `bson:"avatar,omitempty" json:"avatar,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Verification is done by re-hash-and-compare, never by decryption.
	PasswordHash string `bson:"password" json:"-"`
}

// CollectionName returns the name of the collection
// associated with the User model.
func (u User) CollectionName() string {
	return "Users"
}
