package api

import (
	"context"
	"errors"

	"github.com/campusforge/showcase-backend/auth"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity attaches the verified caller identity to the context
func ctxWithIdentity(ctx context.Context, ident auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// identityFromCtx retrieves the verified caller identity. It is only
// present on requests that passed the auth middleware.
func identityFromCtx(ctx context.Context) (auth.Identity, error) {
	ident, ok := ctx.Value(identityKey).(auth.Identity)
	if !ok {
		return auth.Identity{}, errors.New("no identity in context")
	}
	return ident, nil
}
