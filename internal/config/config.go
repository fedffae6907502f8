// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// graphql-todo application. It aggregates all sub-configurations and is
// populated from environment variables (optionally seeded from a .env file by
// the process entry point).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key
	// and issuer.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the MongoDB persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`
}

// App holds application-level configuration values that control token
// security and identification.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential and is required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"graphql-todo"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// Mongo holds the MongoDB connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`
}

// Mongo holds connection settings for the MongoDB document store.
type Mongo struct {
	// URI is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017" or a mongodb+srv URI).
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the name of the database holding the Users and Todos
	// collections.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:4000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":4000"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// GetStructuredConfig loads the application configuration from environment
// variables and validates it.
//
// Returns a fully populated *StructuredConfig or an error if parsing fails or
// a required value is missing.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
