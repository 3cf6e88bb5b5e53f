package handlers_fiber

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/harshit1t/dashboard/internal/api"
	"github.com/harshit1t/dashboard/internal/entities"
	"github.com/harshit1t/dashboard/internal/mapper"
	"github.com/harshit1t/dashboard/internal/transport/http/middleware"
)

// PostUsersTeam creates a team owned by the authenticated user.
func (h *Handler) PostUsersTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	identity, _ := middleware.IdentityFromCtx(c)
	team, err := h.uc.CreateTeam(c.Context(), identity, strings.TrimSpace(body.Name))
	if err != nil {
		h.log.Infow("failed to create team", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Team api.Team `json:"team"`
	}{Team: mapper.ToAPITeam(entities.TeamAccess{Team: *team})}
	return c.Status(http.StatusCreated).JSON(resp)
}

// PostUsersAddTeamMember adds a member to the authenticated user's owned team.
func (h *Handler) PostUsersAddTeamMember(c *fiber.Ctx) error {
	var body api.AddTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	identity, _ := middleware.IdentityFromCtx(c)
	member, err := h.uc.AddTeamMember(c.Context(), identity, strings.TrimSpace(body.Email), entities.Role(body.Role))
	if err != nil {
		h.log.Infow("failed to add team member", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*member)}
	return c.Status(http.StatusCreated).JSON(resp)
}
