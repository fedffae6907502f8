package graph

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/service"
)

// Handler bundles the parsed schema with the services the middleware needs
// and builds the HTTP router for the GraphQL endpoint.
type Handler struct {
	schema   *graphql.Schema
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler for the given schema and services.
func NewHandler(schema *graphql.Schema, services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("graphql http handler created")
	return &Handler{
		schema:   schema,
		services: services,
		logger:   logger,
	}
}

// Init builds the chi router serving the API.
//
// Middleware order matters: the request logger attaches the request-scoped
// logger that the user-resolution middleware and the resolvers log through.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)
	router.Use(h.withUser)

	router.Handle("/query", &relay.Handler{Schema: h.schema})
	router.Get("/api/health", h.health)

	return router
}

// health is a liveness probe; it does not touch the store.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
