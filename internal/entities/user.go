// Package entities contains core business entities.
package entities

// User is a domain representation of a registered user.
// TeamID is nil until the user is attached to a team.
type User struct {
	ID     int64
	Email  string
	TeamID *int64
	Role   Role
}

// NewUser carries validated input for user creation.
type NewUser struct {
	Email  string
	Role   Role
	TeamID *int64
}
