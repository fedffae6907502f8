package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/models"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "Users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database handle and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		collection: db.Collection(models.User{}.CollectionName()),
		logger:     logger,
	}
}

// CreateUser persists a new user document and returns the fully populated
// [models.User] with the store-assigned ID.
//
// Error handling:
//   - Duplicate-key violation on the unique email index → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as [ErrExecutingWrite].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Err(err).Str("email", user.Email).Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingWrite, err)
	}

	insertedID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error().Any("insertedID", res.InsertedID).Msg("unexpected inserted ID type")
		return models.User{}, fmt.Errorf("%w: unexpected inserted ID type %T", ErrExecutingWrite, res.InsertedID)
	}

	user.ID = insertedID

	return user, nil
}

// FindUserByEmail retrieves the user document whose email matches the given
// value.
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&foundUser); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the user document with the given internal
// identifier.
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&foundUser); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
