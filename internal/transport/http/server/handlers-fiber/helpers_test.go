package handlers_fiber

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/harshit1t/dashboard/internal/api"
	"github.com/harshit1t/dashboard/internal/entities"
)

func TestWriteErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    api.ErrorCode
		message string
	}{
		{
			name:    "validation",
			err:     entities.ErrInvalidArgument,
			status:  http.StatusBadRequest,
			code:    api.VALIDATION,
			message: entities.ErrInvalidArgument.Error(),
		},
		{
			name:    "unauthenticated",
			err:     entities.ErrUnauthenticated,
			status:  http.StatusUnauthorized,
			code:    api.UNAUTHENTICATED,
			message: "authentication required",
		},
		{
			name:    "forbidden",
			err:     entities.ErrForbidden,
			status:  http.StatusForbidden,
			code:    api.FORBIDDEN,
			message: "insufficient role",
		},
		{
			name:    "no_team_owned",
			err:     entities.ErrNoTeamOwned,
			status:  http.StatusForbidden,
			code:    api.FORBIDDEN,
			message: "acting user owns no team",
		},
		{
			name:    "user_not_found",
			err:     entities.ErrUserNotFound,
			status:  http.StatusNotFound,
			code:    api.NOTFOUND,
			message: "resource not found",
		},
		{
			name:    "team_not_found",
			err:     entities.ErrTeamNotFound,
			status:  http.StatusNotFound,
			code:    api.NOTFOUND,
			message: "resource not found",
		},
		{
			name:    "email_exists",
			err:     entities.ErrEmailExists,
			status:  http.StatusConflict,
			code:    api.EMAILEXISTS,
			message: "email already registered",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, errors.New("pq: connection refused"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INTERNAL, body.Error.Code)
	require.Equal(t, "internal error", body.Error.Message)
}

func TestWriteErrorUnknownRoleIsInternal(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrUnknownRole)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INTERNAL, body.Error.Code)
	require.Equal(t, "internal error", body.Error.Message)
}
