package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/harshit1t/dashboard/internal/api"
	"github.com/harshit1t/dashboard/internal/entities"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.VALIDATION
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = api.UNAUTHENTICATED
		msg = "authentication required"
	case errors.Is(err, entities.ErrNoTeamOwned):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "acting user owns no team"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "insufficient role"
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusConflict
		code = api.EMAILEXISTS
		msg = "email already registered"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorDetail{Code: code, Message: msg}}
}
