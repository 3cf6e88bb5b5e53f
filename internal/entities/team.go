// Package entities contains core business entities.
package entities

// Team is a named grouping of users with one designated owner.
type Team struct {
	ID      int64
	Name    string
	OwnerID int64
}
