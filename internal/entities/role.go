// Package entities contains core business entities.
package entities

// Role is the closed set of user privilege tiers.
type Role int32

const (
	// RoleAdmin sees every team in the system.
	RoleAdmin Role = 1
	// RoleManager owns a team and manages its members.
	RoleManager Role = 2
	// RoleMember sees only the dashboards of its own team.
	RoleMember Role = 3
)

// Valid reports whether the role is one of the known tiers.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// CanManageTeams reports whether the role may create teams and add members.
func (r Role) CanManageTeams() bool {
	return r == RoleAdmin || r == RoleManager
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	case RoleMember:
		return "member"
	}
	return "unknown"
}
