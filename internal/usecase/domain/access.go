// Package domain contains application Usecases orchestrating domain logic by access resolution.
package domain

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/harshit1t/dashboard/internal/entities"
)

const dashboardFanOutLimit = 8

// ResolveAccess computes the role-scoped view of teams and dashboards for
// the authenticated identity.
func (u *Usecase) ResolveAccess(ctx context.Context, identity *entities.Identity) (*entities.AccessView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.resolveIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}

	teams, err := u.teamsForRole(ctx, usr)
	if err != nil {
		return nil, err
	}

	return &entities.AccessView{User: *usr, Teams: teams}, nil
}

func (u *Usecase) teamsForRole(ctx context.Context, usr *entities.User) ([]entities.TeamAccess, error) {
	switch usr.Role {
	case entities.RoleAdmin:
		return u.allTeamsAccess(ctx)

	case entities.RoleManager:
		if usr.TeamID == nil {
			return []entities.TeamAccess{}, nil
		}
		team, err := u.repo.GetTeamByID(ctx, *usr.TeamID)
		if errors.Is(err, entities.ErrTeamNotFound) {
			return []entities.TeamAccess{}, nil
		}
		if err != nil {
			return nil, err
		}
		dashboards, err := u.repo.ListTeamDashboards(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		return []entities.TeamAccess{{Team: *team, Dashboards: dashboards}}, nil

	case entities.RoleMember:
		if usr.TeamID == nil {
			return []entities.TeamAccess{}, nil
		}
		dashboards, err := u.repo.ListTeamDashboards(ctx, *usr.TeamID)
		if err != nil {
			return nil, err
		}
		// members get dashboards only, team identity stays hidden
		return []entities.TeamAccess{{
			Team:       entities.Team{ID: *usr.TeamID},
			Dashboards: dashboards,
		}}, nil

	default:
		u.log.Errorw("user has unknown role tier",
			"user_id", usr.ID, "email", usr.Email, "role", int32(usr.Role))
		return nil, fmt.Errorf("%w: role tier %d", entities.ErrUnknownRole, usr.Role)
	}
}

// allTeamsAccess enumerates every team and attaches its dashboard grants.
// Per-team lookups run concurrently; results land by index so the output
// keeps the enumeration order.
func (u *Usecase) allTeamsAccess(ctx context.Context) ([]entities.TeamAccess, error) {
	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	access := make([]entities.TeamAccess, len(teams))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dashboardFanOutLimit)

	for i, team := range teams {
		i, team := i, team
		g.Go(func() error {
			dashboards, err := u.repo.ListTeamDashboards(gctx, team.ID)
			if err != nil {
				return err
			}
			access[i] = entities.TeamAccess{Team: team, Dashboards: dashboards}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return access, nil
}
