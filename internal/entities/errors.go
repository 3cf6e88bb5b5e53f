// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUnauthenticated is returned when no valid identity is attached to a request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals an authenticated user lacking the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrNoTeamOwned signals a manager trying to add members without owning a team.
	ErrNoTeamOwned = errors.New("no team owned")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrEmailExists signals user email conflict.
	ErrEmailExists = errors.New("email exists")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownRole signals a stored role tier outside the known set.
	ErrUnknownRole = errors.New("unknown role")
)
