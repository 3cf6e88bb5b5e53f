package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/harshit1t/dashboard/internal/mapper"
	"github.com/harshit1t/dashboard/internal/transport/http/middleware"
)

// GetUsersMe resolves the authenticated identity to its user, teams and dashboards.
func (h *Handler) GetUsersMe(c *fiber.Ctx) error {
	identity, _ := middleware.IdentityFromCtx(c)

	view, err := h.uc.ResolveAccess(c.Context(), identity)
	if err != nil {
		h.log.Errorw("failed to resolve access", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIMe(*view))
}
