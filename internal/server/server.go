package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/avrorin/graphql-todo/internal/config"
	"github.com/avrorin/graphql-todo/internal/graph"
	"github.com/avrorin/graphql-todo/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wires the GraphQL handler into an HTTP server bound to the
// configured address.
func NewServer(handler *graph.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves requests until a stop signal arrives, then shuts the
// transport down gracefully. It blocks for the whole server lifetime.
func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
