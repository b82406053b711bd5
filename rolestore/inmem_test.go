package rolestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemStore()

	_, err := store.Role(ctx, "nobody@example.edu")
	assert.ErrorIs(t, err, ErrNoRole)

	require.NoError(t, store.SetRole(ctx, "boss@example.edu", "superadmin"))
	role, err := store.Role(ctx, "boss@example.edu")
	require.NoError(t, err)
	assert.Equal(t, "superadmin", role)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"boss@example.edu": "superadmin"}, all)

	require.NoError(t, store.DeleteRole(ctx, "boss@example.edu"))
	assert.ErrorIs(t, store.DeleteRole(ctx, "boss@example.edu"), ErrNoRole)
}
