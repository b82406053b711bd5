package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier validates provider-issued ID tokens against the issuer's
// published keys. Pointing it at https://securetoken.google.com/<project>
// with the project ID as audience accepts Firebase ID tokens.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDCVerifier(ctx context.Context, issuer, audience string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("discovering OIDC provider: %w", err)
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: audience}),
	}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	idToken, err := v.verifier.Verify(ctx, token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	// Email is optional on provider tokens; ignore claim decode errors.
	_ = idToken.Claims(&claims)

	return Identity{UID: idToken.Subject, Email: claims.Email}, nil
}
