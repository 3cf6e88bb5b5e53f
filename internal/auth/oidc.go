package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/harshit1t/dashboard/config"
	"github.com/harshit1t/dashboard/internal/entities"
)

// OIDCVerifier validates ID tokens issued by a configured OIDC provider.
// Key material and signature checks are delegated to the issuer via discovery.
type OIDCVerifier struct {
	verifier   *oidc.IDTokenVerifier
	emailClaim string
}

var _ TokenVerifier = (*OIDCVerifier)(nil)

// NewOIDCVerifier initializes the verifier through issuer discovery.
func NewOIDCVerifier(ctx context.Context, cfg config.AuthConfig) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("init oidc provider: %w", err)
	}

	return &OIDCVerifier{
		verifier:   provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		emailClaim: cfg.EmailClaim,
	}, nil
}

// Verify checks the token signature, expiry and audience, then extracts
// subject and email. A token without an email claim is rejected outright:
// every downstream lookup keys on it.
func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (*entities.Identity, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: token verification failed: %v", entities.ErrUnauthenticated, err)
	}

	claims := map[string]any{}
	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: decode claims: %v", entities.ErrUnauthenticated, err)
	}

	email, _ := claims[v.emailClaim].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no %s claim", entities.ErrUnauthenticated, v.emailClaim)
	}

	return &entities.Identity{Subject: token.Subject, Email: email}, nil
}
