// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// JWT token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/avrorin/graphql-todo/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
// Used together with GetUserFromContext for type-safe retrieval of the user
// record from context.Context.
//
// An absent value means the request is anonymous; that is a normal state, not
// an error.
var UserCtxKey = contextKey("authUser")

// WithUser returns a copy of ctx carrying the authenticated user record.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user record and an ok flag:
//   - ok == true  — a non-nil user is present (authenticated request)
//   - ok == false — value is missing, nil, or has an unexpected type
//     (anonymous request)
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
