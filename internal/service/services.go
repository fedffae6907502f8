package service

import (
	"github.com/avrorin/graphql-todo/internal/config"
	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/store"
)

// Services aggregates every domain service the transport layer depends on.
type Services struct {
	AuthService AuthService
	TodoService TodoService
}

// NewServices constructs all domain services against the given repositories.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		TodoService: NewTodoService(storages.TodoRepository, storages.UserRepository, logger),
	}
}
