// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/harshit1t/dashboard/internal/usecase"
)

// Handler serves the user/team/dashboard HTTP surface.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register attaches routes; requireAuth gates the authenticated surface.
func (h *Handler) Register(app fiber.Router, requireAuth fiber.Handler) {
	app.Get("/users", h.GetUsers)
	app.Post("/users", h.PostUsers)
	app.Post("/users/team", requireAuth, h.PostUsersTeam)
	app.Post("/users/addTeamMember", requireAuth, h.PostUsersAddTeamMember)
	app.Get("/users/me", requireAuth, h.GetUsersMe)
}
