package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/models"
)

// todoRepository is the MongoDB-backed implementation of [TodoRepository].
// It handles todo CRUD against the "Todos" collection. Mutating operations
// scope their filter by the owner reference so that a foreign todo id is
// indistinguishable from a missing one.
type todoRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database handle and logger.
func NewTodoRepository(db *mongo.Database, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		collection: db.Collection(models.Todo{}.CollectionName()),
		logger:     logger,
	}
}

// FindByOwner returns all todo documents whose owner reference equals the
// given user identifier. An owner with no todos yields an empty slice, not an
// error.
func (r *todoRepository) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": owner})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.FindByOwner").Msg("error: find failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	todos := []models.Todo{}
	if err = cursor.All(ctx, &todos); err != nil {
		log.Err(err).Str("func", "*todoRepository.FindByOwner").Msg("error: cursor decoding failed")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return todos, nil
}

// FindByID retrieves the todo document with the given internal identifier.
//
// Error handling:
//   - Empty result set → [ErrTodoNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *todoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&todo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.FindByID").Msg("error: lookup failed")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}

// Create persists a new todo document and returns the fully populated
// [models.Todo] with the store-assigned ID. The owner reference must already
// be set by the caller.
func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	res, err := r.collection.InsertOne(ctx, todo)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Create").Msg("error: insert failed")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error().Any("insertedID", res.InsertedID).Msg("unexpected inserted ID type")
		return models.Todo{}, fmt.Errorf("%w: unexpected inserted ID type %T", ErrExecutingWrite, res.InsertedID)
	}

	todo.ID = insertedID

	return todo, nil
}

// Update applies the non-nil fields of patch to the todo matching both id and
// owner, returning the post-update document (single atomic findAndModify).
//
// An empty patch degrades to a plain owner-scoped read: the document is
// returned unchanged instead of issuing an invalid empty $set.
//
// Error handling:
//   - No matching document (missing id or foreign owner) → [ErrTodoNotFound].
//   - Any other driver-level error → wrapped as [ErrExecutingWrite].
func (r *todoRepository) Update(ctx context.Context, id, owner primitive.ObjectID, patch models.TodoPatch) (models.Todo, error) {
	log := logger.FromContext(ctx)

	filter := bson.M{"_id": id, "ownerId": owner}

	set := setDocument(patch)
	if len(set) == 0 {
		return r.findScoped(ctx, filter)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Todo
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.Update").Msg("error: findAndModify failed")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	return updated, nil
}

// Delete removes the todo matching both id and owner.
//
// Error handling:
//   - Zero deleted documents (missing id or foreign owner) → [ErrTodoNotFound].
//   - Any driver-level error → wrapped as [ErrExecutingWrite].
func (r *todoRepository) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	log := logger.FromContext(ctx)

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": owner})
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.Delete").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	if res.DeletedCount == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// findScoped retrieves a single todo by an arbitrary filter, mapping an empty
// result to [ErrTodoNotFound].
func (r *todoRepository) findScoped(ctx context.Context, filter bson.M) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	if err := r.collection.FindOne(ctx, filter).Decode(&todo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(err).Str("func", "*todoRepository.findScoped").Msg("error: lookup failed")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}

// setDocument builds the $set payload for a partial todo update. Only non-nil
// patch fields are included; the identifier and owner reference are never
// part of the payload.
func setDocument(patch models.TodoPatch) bson.M {
	set := bson.M{}

	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.DueDate != nil {
		set["dueDate"] = *patch.DueDate
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.CategoryID != nil {
		set["categoryId"] = *patch.CategoryID
	}
	if patch.IsDone != nil {
		set["isDone"] = *patch.IsDone
	}

	return set
}
