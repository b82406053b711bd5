// Package auth verifies the opaque bearer tokens issued by the external
// identity provider. The backend never issues tokens; it only maps a
// presented token to a stable caller identity.
package auth

import "context"

// Identity is the caller extracted from a verified token.
type Identity struct {
	UID   string
	Email string
}

// Verifier turns a bearer token into a caller identity. Implementations
// must treat any malformed, expired or forged token as an error.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
