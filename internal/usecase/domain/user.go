// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"github.com/harshit1t/dashboard/internal/entities"
)

// ListUsers returns every registered user.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListUsers(ctx)
}

// CreateUser registers a user with a validated role and optional team.
func (u *Usecase) CreateUser(ctx context.Context, user entities.NewUser) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if !user.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be one of 1, 2, 3", entities.ErrInvalidArgument)
	}
	if user.TeamID != nil && *user.TeamID < 1 {
		return nil, fmt.Errorf("%w: team_id must be positive", entities.ErrInvalidArgument)
	}

	return u.repo.CreateUser(ctx, user)
}
