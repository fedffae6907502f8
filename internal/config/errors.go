// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Sentinel errors returned by configuration validation. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoTokenSignKey is returned when the JWT signing secret is missing.
	// The server refuses to start rather than fall back to a hardcoded key.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoMongoURI is returned when the MongoDB connection string is missing.
	ErrNoMongoURI = errors.New("mongo connection URI is not configured")

	// ErrNoMongoDatabase is returned when the MongoDB database name is missing.
	ErrNoMongoDatabase = errors.New("mongo database name is not configured")
)
