// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/harshit1t/dashboard/internal/api"
	"github.com/harshit1t/dashboard/internal/entities"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:     u.ID,
		Email:  u.Email,
		TeamID: u.TeamID,
		Role:   int32(u.Role),
	}
}

// ToAPIUserList maps a slice of entities.User to transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIDashboard maps entities.Dashboard to transport model.
func ToAPIDashboard(d entities.Dashboard) api.Dashboard {
	return api.Dashboard{
		ID:   d.ID,
		Name: d.Name,
		Slug: d.Slug,
	}
}

// ToAPITeam maps a team with its dashboards to transport model.
func ToAPITeam(access entities.TeamAccess) api.Team {
	dashboards := make([]api.Dashboard, 0, len(access.Dashboards))
	for _, d := range access.Dashboards {
		dashboards = append(dashboards, ToAPIDashboard(d))
	}

	return api.Team{
		ID:         access.Team.ID,
		Name:       access.Team.Name,
		OwnerID:    access.Team.OwnerID,
		Dashboards: dashboards,
	}
}

// ToAPIMe maps the resolved access view to transport model.
func ToAPIMe(view entities.AccessView) api.MeResponse {
	teams := make([]api.Team, 0, len(view.Teams))
	for _, t := range view.Teams {
		teams = append(teams, ToAPITeam(t))
	}

	return api.MeResponse{
		User:  ToAPIUser(view.User),
		Teams: teams,
	}
}

// FromAPINewUser builds an entities.NewUser from transport DTO.
func FromAPINewUser(src api.CreateUserRequest) entities.NewUser {
	return entities.NewUser{
		Email:  src.Email,
		Role:   entities.Role(src.Role),
		TeamID: src.TeamID,
	}
}
