package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/service"
	"github.com/avrorin/graphql-todo/internal/store"
	"github.com/avrorin/graphql-todo/internal/utils"
	"github.com/avrorin/graphql-todo/models"
)

// Resolver is the root resolver for the GraphQL schema. It holds the domain
// services every operation delegates to; per-request state (the
// authenticated user) travels in the context instead.
type Resolver struct {
	services *service.Services

	logger *logger.Logger
}

// NewResolver constructs the root resolver over the given services.
func NewResolver(services *service.Services, logger *logger.Logger) *Resolver {
	logger.Info().Msg("graphql resolver created")
	return &Resolver{
		services: services,
		logger:   logger,
	}
}

// requireUser returns the authenticated user from the request context, or
// the canonical sign-in error for anonymous requests. Called before any
// store access in auth-gated resolvers.
func requireUser(ctx context.Context) (*models.User, error) {
	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated(msgPleaseSignIn)
	}

	return user, nil
}

// parseID converts an external ID argument into an internal ObjectID. A
// malformed identifier maps to not-found: it cannot name an existing todo,
// and the response must not distinguish malformed from missing.
func parseID(id graphql.ID) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, errNotFound(msgTodoNotFound)
	}

	return objectID, nil
}

// MyTodos resolves Query.myTodos: every todo owned by the calling user, with
// the owner field populated from the request user — the owner is the caller,
// so no extra lookup is needed.
func (r *Resolver) MyTodos(ctx context.Context) ([]*Todo, error) {
	log := logger.FromContext(ctx)

	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	todos, err := r.services.TodoService.ListByOwner(ctx, user.ID)
	if err != nil {
		log.Err(err).Msg("listing todos failed")
		return nil, errInternal()
	}

	owner := newUser(*user)
	shaped := make([]*Todo, 0, len(todos))
	for _, todo := range todos {
		shaped = append(shaped, newTodo(todo, owner))
	}

	return shaped, nil
}

// GetTodo resolves Query.getTodo: fetches the todo by identifier and its
// owner record by the stored owner reference (a second read). A todo the
// caller does not own is reported as not found.
func (r *Resolver) GetTodo(ctx context.Context, args struct{ ID graphql.ID }) (*Todo, error) {
	log := logger.FromContext(ctx)

	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	todo, owner, err := r.services.TodoService.Get(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			return nil, errNotFound(msgTodoNotFound)
		}

		log.Err(err).Str("todo", string(args.ID)).Msg("fetching todo failed")
		return nil, errInternal()
	}

	return newTodo(todo, newUser(owner)), nil
}

// SignUp resolves Mutation.signUp: registers a new account and issues its
// first token.
func (r *Resolver) SignUp(ctx context.Context, args struct{ Input *SignUpInput }) (*AuthUser, error) {
	log := logger.FromContext(ctx)

	if args.Input == nil {
		return nil, errBadUserInput(msgInvalidInput)
	}

	user, err := r.services.AuthService.SignUp(ctx, service.SignUpParams{
		Name:     args.Input.Name,
		Email:    args.Input.Email,
		Password: args.Input.Password,
		Avatar:   args.Input.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return nil, errConflict(msgEmailUsed)
		case errors.Is(err, service.ErrInvalidDataProvided):
			return nil, errBadUserInput(msgInvalidInput)
		default:
			log.Err(err).Msg("sign-up failed")
			return nil, errInternal()
		}
	}

	token, err := r.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("token creation after sign-up failed")
		return nil, errInternal()
	}

	return &AuthUser{Token: token.SignedString, User: newUser(user)}, nil
}

// SignIn resolves Mutation.signIn: verifies credentials and issues a token.
// Every credential failure produces the same error.
func (r *Resolver) SignIn(ctx context.Context, args struct{ Input *SignInInput }) (*AuthUser, error) {
	log := logger.FromContext(ctx)

	if args.Input == nil {
		return nil, errBadUserInput(msgInvalidInput)
	}

	user, err := r.services.AuthService.SignIn(ctx, args.Input.Email, args.Input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials),
			errors.Is(err, service.ErrInvalidDataProvided):
			return nil, errUnauthenticated(msgInvalidCredentials)
		default:
			log.Err(err).Msg("sign-in failed")
			return nil, errInternal()
		}
	}

	token, err := r.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("token creation after sign-in failed")
		return nil, errInternal()
	}

	return &AuthUser{Token: token.SignedString, User: newUser(user)}, nil
}

// CreateToDo resolves Mutation.createToDo: persists a new todo owned by the
// calling user. The owner field is populated from the request user; no extra
// read is needed.
func (r *Resolver) CreateToDo(ctx context.Context, args struct{ Input *CreateTodoInput }) (*Todo, error) {
	log := logger.FromContext(ctx)

	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if args.Input == nil {
		return nil, errBadUserInput(msgInvalidInput)
	}

	created, err := r.services.TodoService.Create(ctx, args.Input.toModel(user.ID))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			return nil, errBadUserInput(msgInvalidInput)
		}

		log.Err(err).Msg("creating todo failed")
		return nil, errInternal()
	}

	return newTodo(created, newUser(*user)), nil
}

// UpdateToDo resolves Mutation.updateToDo: applies a partial update to the
// caller's todo and returns the post-update document, shaped with the owner
// taken from the request user.
func (r *Resolver) UpdateToDo(ctx context.Context, args struct {
	ID    graphql.ID
	Input *UpdateTodoInput
}) (*Todo, error) {
	log := logger.FromContext(ctx)

	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	if args.Input == nil {
		return nil, errBadUserInput(msgInvalidInput)
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	updated, err := r.services.TodoService.Update(ctx, id, user.ID, args.Input.toPatch())
	if err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			return nil, errNotFound(msgTodoNotFound)
		}

		log.Err(err).Str("todo", string(args.ID)).Msg("updating todo failed")
		return nil, errInternal()
	}

	return newTodo(updated, newUser(*user)), nil
}

// DeleteToDo resolves Mutation.deleteToDo: deletes the caller's todo and
// reports whether the store acknowledged the deletion.
func (r *Resolver) DeleteToDo(ctx context.Context, args struct{ ID graphql.ID }) (*bool, error) {
	log := logger.FromContext(ctx)

	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	acknowledged, err := r.services.TodoService.Delete(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			return nil, errNotFound(msgTodoNotFound)
		}

		log.Err(err).Str("todo", string(args.ID)).Msg("deleting todo failed")
		return nil, errInternal()
	}

	return &acknowledged, nil
}
