package graph

import (
	"net/http"

	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/internal/utils"
)

// withUser is the per-request context builder. It inspects the incoming
// "Authorization" header, resolves the presented token to a user record via
// [service.AuthService.UserFromToken], and — when one is found — stores it in
// the request context under [utils.UserCtxKey].
//
// Unlike a gatekeeping auth middleware, this one never rejects: an absent,
// malformed, expired, or unmatchable token simply leaves the request
// anonymous. Resolvers that require a session enforce it themselves. The
// only failure that surfaces here is an unexpected storage error during the
// user lookup.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.TokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("unusable authorization header; request stays anonymous")
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.UserFromToken(r.Context(), tokenString)
		if err != nil {
			log.Err(err).Msg("resolving user from token failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if user != nil {
			r = r.WithContext(utils.WithUser(r.Context(), user))
		}

		next.ServeHTTP(w, r)
	})
}
