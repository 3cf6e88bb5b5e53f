// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/harshit1t/dashboard/internal/entities"
)

// resolveIdentity maps a verified external identity to its internal user.
// Absence of a matching row surfaces as ErrUserNotFound, a normal outcome
// distinct from store failure.
func (u *Usecase) resolveIdentity(ctx context.Context, identity *entities.Identity) (*entities.User, error) {
	if identity == nil || identity.Email == "" {
		return nil, fmt.Errorf("%w: no identity attached to request", entities.ErrUnauthenticated)
	}
	return u.repo.GetUserByEmail(ctx, identity.Email)
}

// requireManager resolves the acting identity and checks the mutation gate:
// only admins and managers pass. An identity with no user row is rejected as
// forbidden, not as missing, so callers learn nothing about registered accounts.
func (u *Usecase) requireManager(ctx context.Context, identity *entities.Identity) (*entities.User, error) {
	actor, err := u.resolveIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: acting user is not registered", entities.ErrForbidden)
		}
		return nil, err
	}

	if !actor.Role.CanManageTeams() {
		return nil, fmt.Errorf("%w: role %s cannot manage teams", entities.ErrForbidden, actor.Role)
	}
	return actor, nil
}
