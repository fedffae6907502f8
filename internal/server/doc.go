// Package server owns the HTTP transport lifecycle: constructing the server
// around the GraphQL handler, running it, and shutting it down gracefully on
// SIGINT/SIGTERM/SIGQUIT.
package server
