package store

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/avrorin/graphql-todo/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository
}

// NewStorages constructs all repositories against the given database handle.
func NewStorages(db *mongo.Database, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TodoRepository: NewTodoRepository(db, logger),
	}
}
