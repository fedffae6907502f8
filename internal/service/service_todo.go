package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/store"
	"github.com/avrorin/graphql-todo/models"
)

// todoService is the concrete implementation of TodoService.
//
// Every mutating operation is scoped to the calling user: the repository
// filters include the owner reference, and Get re-checks ownership after the
// fetch. A todo belonging to someone else is reported as not found rather
// than as an authorization failure, so foreign identifiers leak nothing.
type todoService struct {
	todoRepository store.TodoRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewTodoService constructs a TodoService wired to the given repositories.
func NewTodoService(todoRepository store.TodoRepository, userRepository store.UserRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListByOwner returns every todo owned by the given user. An owner with no
// todos yields an empty slice.
func (s *todoService) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	todos, err := s.todoRepository.FindByOwner(ctx, owner)
	if err != nil {
		log.Err(err).Str("owner", owner.Hex()).Msg("listing todos failed")
		return nil, fmt.Errorf("listing todos failed: %w", err)
	}

	return todos, nil
}

// Get fetches a todo by id together with its owner record.
//
// Two sequential reads: the todo document, then the owner user referenced by
// it. A caller that does not own the todo receives store.ErrTodoNotFound —
// ownership of foreign items is never confirmed or denied.
func (s *todoService) Get(ctx context.Context, id, caller primitive.ObjectID) (models.Todo, models.User, error) {
	log := logger.FromContext(ctx)

	todo, err := s.todoRepository.FindByID(ctx, id)
	if err != nil {
		return models.Todo{}, models.User{}, fmt.Errorf("todo lookup failed: %w", err)
	}

	if todo.OwnerID != caller {
		log.Warn().Str("todo", id.Hex()).Str("caller", caller.Hex()).Msg("caller requested a foreign todo")
		return models.Todo{}, models.User{}, store.ErrTodoNotFound
	}

	owner, err := s.userRepository.FindUserByID(ctx, todo.OwnerID)
	if err != nil {
		log.Err(err).Str("owner", todo.OwnerID.Hex()).Msg("owner lookup failed")
		return models.Todo{}, models.User{}, fmt.Errorf("owner lookup failed: %w", err)
	}

	return todo, owner, nil
}

// Create persists a new todo. The owner reference must already be set to the
// calling user; the title must be present.
func (s *todoService) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if todo.Title == "" || todo.OwnerID.IsZero() {
		log.Error().Any("todo", todo).Msg("invalid todo data provided")
		return models.Todo{}, ErrInvalidDataProvided
	}

	created, err := s.todoRepository.Create(ctx, todo)
	if err != nil {
		log.Err(err).Str("owner", todo.OwnerID.Hex()).Msg("todo creation ended with error")
		return models.Todo{}, fmt.Errorf("todo creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies the non-nil fields of patch to the caller's todo and returns
// the post-update document. A missing or foreign todo yields
// store.ErrTodoNotFound.
func (s *todoService) Update(ctx context.Context, id, caller primitive.ObjectID, patch models.TodoPatch) (models.Todo, error) {
	log := logger.FromContext(ctx)

	updated, err := s.todoRepository.Update(ctx, id, caller, patch)
	if err != nil {
		log.Err(err).Str("todo", id.Hex()).Str("caller", caller.Hex()).Msg("todo update ended with error")
		return models.Todo{}, fmt.Errorf("todo update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes the caller's todo. Returns true when the store acknowledged
// the deletion; a missing or foreign todo yields store.ErrTodoNotFound.
func (s *todoService) Delete(ctx context.Context, id, caller primitive.ObjectID) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.todoRepository.Delete(ctx, id, caller); err != nil {
		log.Err(err).Str("todo", id.Hex()).Str("caller", caller.Hex()).Msg("todo deletion ended with error")
		return false, fmt.Errorf("todo deletion ended with error: %w", err)
	}

	return true, nil
}
