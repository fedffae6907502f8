package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/models"
)

func userDoc(id primitive.ObjectID, name, email string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "email", Value: email},
		{Key: "password", Value: "bcrypt-hash"},
	}
}

func TestUserRepository_CreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns inserted id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewUserRepository(mt.DB, logger.Nop())
		created, err := repo.CreateUser(context.Background(), models.User{
			Name:         "A",
			Email:        "a@x.com",
			PasswordHash: "hash",
		})
		require.NoError(mt, err)

		assert.False(mt, created.ID.IsZero(), "expected store-assigned ID")
		assert.Equal(mt, "a@x.com", created.Email)
	})

	mt.Run("duplicate email maps to ErrEmailAlreadyExists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		repo := NewUserRepository(mt.DB, logger.Nop())
		_, err := repo.CreateUser(context.Background(), models.User{
			Name:         "A",
			Email:        "a@x.com",
			PasswordHash: "hash",
		})

		assert.ErrorIs(mt, err, ErrEmailAlreadyExists)
	})
}

func TestUserRepository_FindUserByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + ".Users"

		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, userDoc(id, "A", "a@x.com")))

		repo := NewUserRepository(mt.DB, logger.Nop())
		user, err := repo.FindUserByEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)

		assert.Equal(mt, id, user.ID)
		assert.Equal(mt, "A", user.Name)
		assert.Equal(mt, "bcrypt-hash", user.PasswordHash)
	})

	mt.Run("missing maps to ErrNoUserWasFound", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".Users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		repo := NewUserRepository(mt.DB, logger.Nop())
		_, err := repo.FindUserByEmail(context.Background(), "missing@x.com")

		assert.ErrorIs(mt, err, ErrNoUserWasFound)
	})
}

func TestUserRepository_FindUserByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + ".Users"

		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, userDoc(id, "A", "a@x.com")))

		repo := NewUserRepository(mt.DB, logger.Nop())
		user, err := repo.FindUserByID(context.Background(), id)
		require.NoError(mt, err)

		assert.Equal(mt, id, user.ID)
	})

	mt.Run("missing maps to ErrNoUserWasFound", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".Users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		repo := NewUserRepository(mt.DB, logger.Nop())
		_, err := repo.FindUserByID(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(mt, err, ErrNoUserWasFound)
	})
}
