package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTodoNotFound is returned when an operation targets a todo that does
	// not exist — or, for owner-scoped operations, one that is not owned by
	// the caller. The two cases are deliberately indistinguishable.
	ErrTodoNotFound = errors.New("todo was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a driver-level operation fails before any domain logic
// can be applied.
var (
	// ErrConnectingToMongo is returned when the MongoDB client cannot be
	// constructed from the configured connection string.
	ErrConnectingToMongo = errors.New("error connecting to mongodb")

	// ErrPingingMongo is returned when the deployment does not answer the
	// startup ping. Startup fails rather than serving requests against an
	// unreachable store.
	ErrPingingMongo = errors.New("error pinging mongodb")

	// ErrCreatingIndexes is returned when index creation fails at startup.
	ErrCreatingIndexes = errors.New("error creating mongodb indexes")

	// ErrExecutingQuery is returned when executing a read against the
	// database fails for reasons other than an empty result.
	ErrExecutingQuery = errors.New("error executing mongodb query")

	// ErrExecutingWrite is returned when an insert, update, or delete fails
	// for reasons other than a domain-level conflict.
	ErrExecutingWrite = errors.New("error executing mongodb write")

	// ErrDecodingDocument is returned when decoding a stored document into a
	// model struct fails.
	ErrDecodingDocument = errors.New("error decoding mongodb document")
)
