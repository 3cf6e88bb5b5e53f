package usecase

import (
	"context"

	"github.com/harshit1t/dashboard/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, user entities.NewUser) (*entities.User, error)
}

// AccessUsecaseInterface abstracts role-scoped access resolution.
type AccessUsecaseInterface interface {
	ResolveAccess(ctx context.Context, identity *entities.Identity) (*entities.AccessView, error)
}

// TeamUsecaseInterface abstracts gated team mutations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, identity *entities.Identity, name string) (*entities.Team, error)
	AddTeamMember(ctx context.Context, identity *entities.Identity, email string, role entities.Role) (*entities.User, error)
}
