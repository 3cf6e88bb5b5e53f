// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/harshit1t/dashboard/internal/entities"
)

// CreateTeam creates a team owned by the acting user.
func (u *Usecase) CreateTeam(ctx context.Context, identity *entities.Identity, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}

	actor, err := u.requireManager(ctx, identity)
	if err != nil {
		return nil, err
	}

	team, err := u.repo.CreateTeam(ctx, name, actor.ID)
	if err != nil {
		return nil, err
	}

	u.log.Infow("team created", "team_id", team.ID, "owner_id", actor.ID)
	return team, nil
}

// AddTeamMember registers a user on the team owned by the acting user.
func (u *Usecase) AddTeamMember(ctx context.Context, identity *entities.Identity, email string, role entities.Role) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be one of 1, 2, 3", entities.ErrInvalidArgument)
	}

	actor, err := u.requireManager(ctx, identity)
	if err != nil {
		return nil, err
	}

	team, err := u.repo.GetTeamByOwner(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, entities.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: acting user owns no team", entities.ErrNoTeamOwned)
		}
		return nil, err
	}

	// the owner lookup and the insert are separate statements, not a
	// transaction: a concurrent team change between them can race
	member, err := u.repo.CreateUser(ctx, entities.NewUser{
		Email:  email,
		Role:   role,
		TeamID: &team.ID,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("team member added", "team_id", team.ID, "user_id", member.ID)
	return member, nil
}
