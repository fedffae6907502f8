package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avrorin/graphql-todo/models"
)

// UserRepository is the data-access contract for the "Users" collection.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the store-assigned
	// ID populated. Returns ErrEmailAlreadyExists if the unique email index
	// rejects the insert.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by email.
	// Returns ErrNoUserWasFound when no document matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by its internal identifier.
	// Returns ErrNoUserWasFound when no document matches.
	FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

// TodoRepository is the data-access contract for the "Todos" collection.
// Update and Delete are owner-scoped: the filter includes the owner reference
// so a mismatched owner behaves exactly like a missing document.
type TodoRepository interface {
	// FindByOwner returns every todo owned by the given user.
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Todo, error)

	// FindByID looks a todo up by its internal identifier.
	// Returns ErrTodoNotFound when no document matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Todo, error)

	// Create persists a new todo and returns it with the store-assigned ID
	// populated.
	Create(ctx context.Context, todo models.Todo) (models.Todo, error)

	// Update applies the non-nil fields of patch to the todo matching id and
	// owner, returning the post-update document.
	// Returns ErrTodoNotFound when no document matches.
	Update(ctx context.Context, id, owner primitive.ObjectID, patch models.TodoPatch) (models.Todo, error)

	// Delete removes the todo matching id and owner.
	// Returns ErrTodoNotFound when no document matches.
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
}
