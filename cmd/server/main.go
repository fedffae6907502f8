package main

import (
	"context"
	"fmt"

	"github.com/avrorin/graphql-todo/internal/config"
	"github.com/avrorin/graphql-todo/internal/graph"
	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/server"
	"github.com/avrorin/graphql-todo/internal/service"
	"github.com/avrorin/graphql-todo/internal/store"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("graphql-todo-server")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(log *logger.Logger) error {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	db, err := store.NewMongoDB(ctx, cfg.Storage.Mongo, log)
	if err != nil {
		return fmt.Errorf("error connecting to mongo: %w", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error disconnecting from mongo")
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("error creating indexes: %w", err)
	}

	storages := store.NewStorages(db.Database, log)
	services := service.NewServices(storages, cfg.App, log)

	resolver := graph.NewResolver(services, log)
	schema, err := graph.ParseSchema(resolver)
	if err != nil {
		return fmt.Errorf("error parsing schema: %w", err)
	}

	handler := graph.NewHandler(schema, services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
