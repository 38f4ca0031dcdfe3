package identity

import (
	"context"

	"smmhub/pkg/server/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Key is the context key for the authenticated user.
const Key ContextKey = "identity"

// NewContext returns a context carrying the authenticated user.
func NewContext(ctx context.Context, user *store.User) context.Context {
	return context.WithValue(ctx, Key, user)
}

// FromContext retrieves the authenticated user set by the token middleware.
func FromContext(ctx context.Context) (*store.User, bool) {
	user, ok := ctx.Value(Key).(*store.User)
	return user, ok
}
