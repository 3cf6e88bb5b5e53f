// Package entities contains core business entities.
package entities

// Dashboard is a slug-addressed catalog entry granted to teams.
type Dashboard struct {
	ID    int64
	Name  string
	Slug  string
	Order int32
}

// DashboardGrant is a per-user dashboard override with role/tech tags.
// Stored alongside team grants but not consulted during access resolution;
// reserved for a future per-user override.
type DashboardGrant struct {
	UserID      int64
	DashboardID int64
	Role        string
	Tech        string
}
