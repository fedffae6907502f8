package graph

// Error codes surfaced to clients in the extensions map of a GraphQL error.
const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeConflict        = "CONFLICT"
	codeNotFound        = "NOT_FOUND"
	codeBadUserInput    = "BAD_USER_INPUT"
	codeInternal        = "INTERNAL_SERVER_ERROR"
)

// User-visible error messages. Sign-in failures share one message so callers
// cannot tell an unknown email from a wrong password.
const (
	msgPleaseSignIn       = "Authentication error. Please sign in!"
	msgInvalidCredentials = "Invalid credentials!"
	msgEmailUsed          = "The email is used!"
	msgTodoNotFound       = "The todo was not found!"
	msgInvalidInput       = "Invalid input provided!"
	msgInternal           = "Internal server error!"
)

// resolverError is a GraphQL resolver error carrying a machine-readable code
// in the error extensions alongside the human-readable message.
type resolverError struct {
	code    string
	message string
}

func (e *resolverError) Error() string {
	return e.message
}

// Extensions implements the extensions hook of graph-gophers/graphql-go; the
// returned map is serialized into the "extensions" member of the GraphQL
// error.
func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// errUnauthenticated signals an operation that requires a signed-in user was
// invoked anonymously, or that sign-in credentials did not verify.
func errUnauthenticated(message string) *resolverError {
	return &resolverError{code: codeUnauthenticated, message: message}
}

// errConflict signals a sign-up against an email that is already on file.
func errConflict(message string) *resolverError {
	return &resolverError{code: codeConflict, message: message}
}

// errNotFound signals an operation against a todo that does not exist for
// the caller.
func errNotFound(message string) *resolverError {
	return &resolverError{code: codeNotFound, message: message}
}

// errBadUserInput signals a missing or structurally unusable input object.
func errBadUserInput(message string) *resolverError {
	return &resolverError{code: codeBadUserInput, message: message}
}

// errInternal hides unexpected failures behind a generic message; details
// stay in the server log.
func errInternal() *resolverError {
	return &resolverError{code: codeInternal, message: msgInternal}
}
