package server

import "errors"

// errNoServersAreCreated is returned when no listen address is configured,
// leaving nothing to run.
var errNoServersAreCreated = errors.New("no servers are created")
