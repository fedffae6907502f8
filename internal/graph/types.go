package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avrorin/graphql-todo/models"
)

// User is the API-facing view of a user account. The password hash has no
// counterpart here: stripping it is enforced by construction, not by runtime
// filtering.
type User struct {
	ID     graphql.ID
	Name   string
	Email  string
	Avatar *string
}

// Todo is the API-facing view of a todo item. Identifiers are the canonical
// string form of the internal ObjectIDs, and the owner reference is expanded
// into an embedded User.
type Todo struct {
	ID          graphql.ID
	Title       string
	Description *string
	DueDate     *string
	Priority    *int32
	CategoryID  *string
	IsDone      bool
	OwnerID     graphql.ID
	Owner       *User
}

// AuthUser pairs a freshly issued token with the view of the account it
// belongs to. Returned by signUp and signIn.
type AuthUser struct {
	Token string
	User  *User
}

// SignUpInput carries the signUp mutation arguments.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Avatar   *string
}

// SignInInput carries the signIn mutation arguments.
type SignInInput struct {
	Email    string
	Password string
}

// CreateTodoInput carries the createToDo mutation arguments.
type CreateTodoInput struct {
	Title       string
	Description *string
	DueDate     *string
	Priority    *int32
	CategoryID  *string
	IsDone      bool
}

// UpdateTodoInput carries the updateToDo mutation arguments. Every field is
// optional; only present fields are applied.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *int32
	CategoryID  *string
	IsDone      *bool
}

// newUser translates a stored user document into its API view, converting
// the internal identifier to its string form and dropping the password hash.
func newUser(user models.User) *User {
	return &User{
		ID:     graphql.ID(user.ID.Hex()),
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}
}

// newTodo translates a stored todo document into its API view. The owner is
// supplied by the caller: either the already-known request user or a freshly
// fetched owner record, depending on the resolver.
func newTodo(todo models.Todo, owner *User) *Todo {
	return &Todo{
		ID:          graphql.ID(todo.ID.Hex()),
		Title:       todo.Title,
		Description: todo.Description,
		DueDate:     todo.DueDate,
		Priority:    todo.Priority,
		CategoryID:  todo.CategoryID,
		IsDone:      todo.IsDone,
		OwnerID:     graphql.ID(todo.OwnerID.Hex()),
		Owner:       owner,
	}
}

// toModel converts the create input into a storable document owned by the
// given user.
func (in CreateTodoInput) toModel(owner primitive.ObjectID) models.Todo {
	return models.Todo{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		CategoryID:  in.CategoryID,
		IsDone:      in.IsDone,
		OwnerID:     owner,
	}
}

// toPatch converts the update input into a partial update document.
func (in UpdateTodoInput) toPatch() models.TodoPatch {
	return models.TodoPatch{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		CategoryID:  in.CategoryID,
		IsDone:      in.IsDone,
	}
}
