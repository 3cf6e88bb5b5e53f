// Package entities contains core business entities.
package entities

// Identity is a verified external identity, produced per request.
type Identity struct {
	Subject string
	Email   string
}

// TeamAccess pairs a team with the dashboards it can see.
// For members the team carries only its id: name and owner stay zero,
// the lowest tier is not shown team identity.
type TeamAccess struct {
	Team       Team
	Dashboards []Dashboard
}

// AccessView is the role-scoped view of teams and dashboards for one user.
type AccessView struct {
	User  User
	Teams []TeamAccess
}
