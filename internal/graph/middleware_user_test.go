package graph

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/service"
	"github.com/avrorin/graphql-todo/internal/utils"
	"github.com/avrorin/graphql-todo/models"
)

func testHandler(auth service.AuthService) *Handler {
	return NewHandler(nil, &service.Services{AuthService: auth}, logger.Nop())
}

// callThroughUserMiddleware sends a request with the given Authorization
// header through withUser and reports the user the next handler observed.
func callThroughUserMiddleware(t *testing.T, h *Handler, authHeader string) (*models.User, *httptest.ResponseRecorder) {
	t.Helper()

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := utils.GetUserFromContext(r.Context()); ok {
			seen = user
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	h.withUser(next).ServeHTTP(recorder, req)

	return seen, recorder
}

func TestWithUser_NoHeaderSkipsLookup(t *testing.T) {
	lookups := 0

	auth := &mockAuthService{
		userFromTokenFn: func(context.Context, string) (*models.User, error) {
			lookups++
			return nil, nil
		},
	}

	seen, recorder := callThroughUserMiddleware(t, testHandler(auth), "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, seen)
	assert.Zero(t, lookups, "no lookup without an authorization header")
}

func TestWithUser_AttachesResolvedUser(t *testing.T) {
	stored := &models.User{ID: primitive.NewObjectID(), Email: "a@x.com"}

	auth := &mockAuthService{
		userFromTokenFn: func(_ context.Context, tokenString string) (*models.User, error) {
			assert.Equal(t, "signed-token", tokenString)
			return stored, nil
		},
	}

	// the raw token and the Bearer-prefixed form must both resolve
	for _, header := range []string{"signed-token", "Bearer signed-token"} {
		seen, recorder := callThroughUserMiddleware(t, testHandler(auth), header)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, seen, "header %q", header)
		assert.Equal(t, stored.ID, seen.ID)
	}
}

func TestWithUser_UnmatchedTokenStaysAnonymous(t *testing.T) {
	auth := &mockAuthService{
		userFromTokenFn: func(context.Context, string) (*models.User, error) {
			return nil, nil
		},
	}

	seen, recorder := callThroughUserMiddleware(t, testHandler(auth), "expired-or-garbage")

	assert.Equal(t, http.StatusOK, recorder.Code, "an unusable token must not block the request")
	assert.Nil(t, seen)
}

func TestWithUser_StorageErrorFailsRequest(t *testing.T) {
	auth := &mockAuthService{
		userFromTokenFn: func(context.Context, string) (*models.User, error) {
			return nil, errors.New("connection reset")
		},
	}

	seen, recorder := callThroughUserMiddleware(t, testHandler(auth), "signed-token")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Nil(t, seen)
}
