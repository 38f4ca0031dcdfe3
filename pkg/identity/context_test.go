package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smmhub/pkg/server/store"
)

func TestContextRoundTrip(t *testing.T) {
	user := &store.User{ID: 7, Login: "alice"}
	ctx := NewContext(context.Background(), user)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, user, got)
}

func TestFromContextMissing(t *testing.T) {
	got, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}
