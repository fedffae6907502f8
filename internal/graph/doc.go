// Package graph implements the GraphQL transport layer of the application.
// It provides the schema, the root resolver mapping operations to the domain
// services, middleware deriving the per-request authentication context, and
// the shape translation between stored documents and API output types.
// Domain errors are surfaced as GraphQL errors carrying an extensions code.
package graph
