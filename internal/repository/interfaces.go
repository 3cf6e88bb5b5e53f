// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/harshit1t/dashboard/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserByID(ctx context.Context, id int64) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.NewUser) (*entities.User, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, name string, ownerID int64) (*entities.Team, error)
	GetTeamByID(ctx context.Context, id int64) (*entities.Team, error)
	GetTeamByOwner(ctx context.Context, ownerID int64) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
}

// DashboardInterface exposes dashboard catalog operations.
type DashboardInterface interface {
	ListTeamDashboards(ctx context.Context, teamID int64) ([]entities.Dashboard, error)
}
