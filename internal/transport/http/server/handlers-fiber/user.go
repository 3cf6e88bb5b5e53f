package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/harshit1t/dashboard/internal/api"
	"github.com/harshit1t/dashboard/internal/mapper"
)

// GetUsers returns all registered users.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Users []api.User `json:"users"`
	}{Users: mapper.ToAPIUserList(users)}

	return c.Status(http.StatusOK).JSON(resp)
}

// PostUsers creates a user.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	usr, err := h.uc.CreateUser(c.Context(), mapper.FromAPINewUser(body))
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*usr)}
	return c.Status(http.StatusCreated).JSON(resp)
}
