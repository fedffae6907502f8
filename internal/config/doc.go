// SPDX-License-Identifier: Apache-2.0

// Package config loads and validates the application configuration.
//
// Configuration is sourced from process environment variables via struct
// tags (caarlos0/env). The process entry point may seed the environment from
// a .env file before calling [GetStructuredConfig]; this package itself never
// touches the filesystem.
package config
