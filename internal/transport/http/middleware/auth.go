package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/harshit1t/dashboard/internal/api"
	"github.com/harshit1t/dashboard/internal/auth"
	"github.com/harshit1t/dashboard/internal/entities"
)

const identityKey = "identity"

// RequireAuth extracts and verifies the bearer token, attaching the verified
// identity to the request. Header checks happen before the verifier is called.
func RequireAuth(log *zap.SugaredLogger, verifier auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthenticated(c, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return unauthenticated(c, "authorization header must be a bearer token")
		}

		identity, err := verifier.Verify(c.Context(), parts[1])
		if err != nil {
			log.Infow("token verification failed", "error", err.Error())
			return unauthenticated(c, "invalid or expired token")
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx returns the verified identity attached by RequireAuth.
func IdentityFromCtx(c *fiber.Ctx) (*entities.Identity, bool) {
	identity, ok := c.Locals(identityKey).(*entities.Identity)
	return identity, ok
}

func unauthenticated(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorDetail{Code: api.UNAUTHENTICATED, Message: msg},
	})
}
