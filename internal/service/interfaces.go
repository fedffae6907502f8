package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avrorin/graphql-todo/models"
)

// SignUpParams carries the data required to register a new account.
type SignUpParams struct {
	Name     string
	Email    string
	Password string
	Avatar   *string
}

// AuthService handles user registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	// SignUp creates a new user account with a bcrypt-hashed password.
	// Returns store.ErrEmailAlreadyExists if the email is already on file.
	SignUp(ctx context.Context, params SignUpParams) (models.User, error)

	// SignIn authenticates an existing user by email and password.
	// A missing account and a wrong password both yield ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string. Any validation
	// failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// UserFromToken resolves a raw token string to the user it identifies.
	// A missing, malformed, expired, or unmatchable token yields (nil, nil):
	// an anonymous request, never an error.
	UserFromToken(ctx context.Context, tokenString string) (*models.User, error)
}

// TodoService handles todo CRUD scoped to an owning user.
type TodoService interface {
	// ListByOwner returns every todo owned by the given user.
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Todo, error)

	// Get fetches a todo by id together with its owner record.
	// A todo owned by someone other than caller yields store.ErrTodoNotFound.
	Get(ctx context.Context, id, caller primitive.ObjectID) (models.Todo, models.User, error)

	// Create persists a new todo owned by its OwnerID.
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)

	// Update applies a partial update to the caller's todo and returns the
	// post-update document.
	Update(ctx context.Context, id, caller primitive.ObjectID, patch models.TodoPatch) (models.Todo, error)

	// Delete removes the caller's todo, reporting whether the store
	// acknowledged the deletion.
	Delete(ctx context.Context, id, caller primitive.ObjectID) (bool, error)
}
