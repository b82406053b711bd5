package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHS256Verifier_roundTrip(t *testing.T) {
	verifier, err := NewHS256Verifier("test-secret")
	require.NoError(t, err)

	token, err := MintHS256("test-secret", "u1", "u1@example.edu", time.Minute)
	require.NoError(t, err)

	ident, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", ident.UID)
	assert.Equal(t, "u1@example.edu", ident.Email)
}

func TestHS256Verifier_wrongSecret(t *testing.T) {
	verifier, err := NewHS256Verifier("right-secret")
	require.NoError(t, err)

	token, err := MintHS256("wrong-secret", "u1", "", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHS256Verifier_expired(t *testing.T) {
	verifier, err := NewHS256Verifier("test-secret")
	require.NoError(t, err)

	token, err := MintHS256("test-secret", "u1", "", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHS256Verifier_garbage(t *testing.T) {
	verifier, err := NewHS256Verifier("test-secret")
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewHS256Verifier_emptySecret(t *testing.T) {
	_, err := NewHS256Verifier("")
	assert.Error(t, err)
}
