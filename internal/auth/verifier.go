// Package auth verifies bearer credentials against the external token issuer.
package auth

import (
	"context"

	"github.com/harshit1t/dashboard/internal/entities"
)

// TokenVerifier validates a raw bearer token and returns the identity it asserts.
// It returns facts only; mapping an identity to a user happens downstream.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*entities.Identity, error)
}
