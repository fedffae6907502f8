package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/store"
	"github.com/avrorin/graphql-todo/models"
)

// ─────────────────────────────────────────────
// Mock TodoRepository
// ─────────────────────────────────────────────

// mockTodoRepository implements store.TodoRepository for unit tests.
// Each method field can be overridden per test case.
type mockTodoRepository struct {
	findByOwnerFn func(ctx context.Context, owner primitive.ObjectID) ([]models.Todo, error)
	findByIDFn    func(ctx context.Context, id primitive.ObjectID) (models.Todo, error)
	createFn      func(ctx context.Context, todo models.Todo) (models.Todo, error)
	updateFn      func(ctx context.Context, id, owner primitive.ObjectID, patch models.TodoPatch) (models.Todo, error)
	deleteFn      func(ctx context.Context, id, owner primitive.ObjectID) error
}

func (m *mockTodoRepository) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Todo, error) {
	return m.findByOwnerFn(ctx, owner)
}

func (m *mockTodoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Todo, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockTodoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	return m.createFn(ctx, todo)
}

func (m *mockTodoRepository) Update(ctx context.Context, id, owner primitive.ObjectID, patch models.TodoPatch) (models.Todo, error) {
	return m.updateFn(ctx, id, owner, patch)
}

func (m *mockTodoRepository) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	return m.deleteFn(ctx, id, owner)
}

func newTodoService(todos *mockTodoRepository, users *mockUserRepository) TodoService {
	return NewTodoService(todos, users, logger.Nop())
}

func boolPtr(b bool) *bool { return &b }

// ─────────────────────────────────────────────
// ListByOwner
// ─────────────────────────────────────────────

func TestListByOwner_ReturnsOwnedTodos(t *testing.T) {
	owner := primitive.NewObjectID()
	stored := []models.Todo{
		{ID: primitive.NewObjectID(), Title: "one", OwnerID: owner},
		{ID: primitive.NewObjectID(), Title: "two", OwnerID: owner, IsDone: true},
	}

	todos := &mockTodoRepository{
		findByOwnerFn: func(_ context.Context, o primitive.ObjectID) ([]models.Todo, error) {
			assert.Equal(t, owner, o)
			return stored, nil
		},
	}

	svc := newTodoService(todos, noUsers())

	got, err := svc.ListByOwner(context.Background(), owner)
	require.NoError(t, err)

	assert.Equal(t, stored, got)
}

// ─────────────────────────────────────────────
// Get
// ─────────────────────────────────────────────

func TestGet_FetchesTodoAndOwner(t *testing.T) {
	caller := primitive.NewObjectID()
	todoID := primitive.NewObjectID()

	ownerRecord := models.User{ID: caller, Name: "A", Email: "a@x.com"}

	todos := &mockTodoRepository{
		findByIDFn: func(_ context.Context, id primitive.ObjectID) (models.Todo, error) {
			assert.Equal(t, todoID, id)
			return models.Todo{ID: todoID, Title: "T", OwnerID: caller}, nil
		},
	}
	users := noUsers()
	users.findUserByIDFn = func(_ context.Context, id primitive.ObjectID) (models.User, error) {
		assert.Equal(t, caller, id)
		return ownerRecord, nil
	}

	svc := newTodoService(todos, users)

	todo, owner, err := svc.Get(context.Background(), todoID, caller)
	require.NoError(t, err)

	assert.Equal(t, "T", todo.Title)
	assert.Equal(t, ownerRecord, owner)
}

func TestGet_ForeignTodoIsNotFound(t *testing.T) {
	caller := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	todoID := primitive.NewObjectID()

	ownerLookups := 0

	todos := &mockTodoRepository{
		findByIDFn: func(_ context.Context, id primitive.ObjectID) (models.Todo, error) {
			return models.Todo{ID: todoID, Title: "T", OwnerID: stranger}, nil
		},
	}
	users := noUsers()
	users.findUserByIDFn = func(_ context.Context, id primitive.ObjectID) (models.User, error) {
		ownerLookups++
		return models.User{}, store.ErrNoUserWasFound
	}

	svc := newTodoService(todos, users)

	_, _, err := svc.Get(context.Background(), todoID, caller)

	// ownership mismatch is reported exactly like a missing todo
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
	assert.Zero(t, ownerLookups, "no owner lookup for a foreign todo")
}

func TestGet_MissingTodo(t *testing.T) {
	todos := &mockTodoRepository{
		findByIDFn: func(context.Context, primitive.ObjectID) (models.Todo, error) {
			return models.Todo{}, store.ErrTodoNotFound
		},
	}

	svc := newTodoService(todos, noUsers())

	_, _, err := svc.Get(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	owner := primitive.NewObjectID()
	assignedID := primitive.NewObjectID()

	todos := &mockTodoRepository{
		createFn: func(_ context.Context, todo models.Todo) (models.Todo, error) {
			todo.ID = assignedID
			return todo, nil
		},
	}

	svc := newTodoService(todos, noUsers())

	created, err := svc.Create(context.Background(), models.Todo{Title: "T", OwnerID: owner})
	require.NoError(t, err)

	assert.Equal(t, assignedID, created.ID)
	assert.Equal(t, owner, created.OwnerID)
}

func TestCreate_InvalidData(t *testing.T) {
	svc := newTodoService(&mockTodoRepository{}, noUsers())

	_, err := svc.Create(context.Background(), models.Todo{OwnerID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), models.Todo{Title: "T"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Update / Delete
// ─────────────────────────────────────────────

func TestUpdate_PassesOwnerScopedPatch(t *testing.T) {
	caller := primitive.NewObjectID()
	todoID := primitive.NewObjectID()

	todos := &mockTodoRepository{
		updateFn: func(_ context.Context, id, owner primitive.ObjectID, patch models.TodoPatch) (models.Todo, error) {
			assert.Equal(t, todoID, id)
			assert.Equal(t, caller, owner)
			require.NotNil(t, patch.IsDone)
			assert.True(t, *patch.IsDone)
			assert.Nil(t, patch.Title, "untouched fields stay nil")

			return models.Todo{ID: id, Title: "unchanged", IsDone: *patch.IsDone, OwnerID: owner}, nil
		},
	}

	svc := newTodoService(todos, noUsers())

	updated, err := svc.Update(context.Background(), todoID, caller, models.TodoPatch{IsDone: boolPtr(true)})
	require.NoError(t, err)

	assert.True(t, updated.IsDone)
	assert.Equal(t, "unchanged", updated.Title)
}

func TestUpdate_NotFound(t *testing.T) {
	todos := &mockTodoRepository{
		updateFn: func(context.Context, primitive.ObjectID, primitive.ObjectID, models.TodoPatch) (models.Todo, error) {
			return models.Todo{}, store.ErrTodoNotFound
		},
	}

	svc := newTodoService(todos, noUsers())

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), models.TodoPatch{})
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestDelete_Acknowledged(t *testing.T) {
	todos := &mockTodoRepository{
		deleteFn: func(context.Context, primitive.ObjectID, primitive.ObjectID) error {
			return nil
		},
	}

	svc := newTodoService(todos, noUsers())

	ok, err := svc.Delete(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete_NotFound(t *testing.T) {
	todos := &mockTodoRepository{
		deleteFn: func(context.Context, primitive.ObjectID, primitive.ObjectID) error {
			return store.ErrTodoNotFound
		},
	}

	svc := newTodoService(todos, noUsers())

	ok, err := svc.Delete(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.False(t, ok)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}
