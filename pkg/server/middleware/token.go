// Package middleware provides HTTP middleware for the smmhub server.
package middleware

import (
	"net/http"
	"strings"

	"smmhub/pkg/identity"
	"smmhub/pkg/server/store"
)

// TokenAuthenticator is middleware that validates identity tokens and
// resolves the calling user before protected handlers run.
type TokenAuthenticator struct {
	Tokens *identity.TokenService
	Users  store.UsersStore
}

// NewTokenAuthenticator creates a new token authenticator middleware
func NewTokenAuthenticator(tokens *identity.TokenService, users store.UsersStore) *TokenAuthenticator {
	return &TokenAuthenticator{Tokens: tokens, Users: users}
}

// Middleware returns an HTTP middleware that validates bearer tokens
func (a *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			unauthorized(w, "Authorization missing")
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			unauthorized(w, "Malformed authorization header")
			return
		}

		login, err := a.Tokens.Verify(tokenStr)
		if err != nil {
			unauthorized(w, "Invalid token")
			return
		}

		user, err := a.Users.UserByLogin(login)
		if err != nil {
			unauthorized(w, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(identity.NewContext(r.Context(), user)))
	})
}

func unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"reason":"` + reason + `"}`))
}
