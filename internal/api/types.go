// Package api defines the transport request/response models.
package api

// ErrorCode is the closed set of machine-readable error codes.
type ErrorCode string

const (
	// VALIDATION marks a malformed request body.
	VALIDATION ErrorCode = "VALIDATION"
	// UNAUTHENTICATED marks a missing or invalid bearer credential.
	UNAUTHENTICATED ErrorCode = "UNAUTHENTICATED"
	// FORBIDDEN marks an authenticated but under-privileged request.
	FORBIDDEN ErrorCode = "FORBIDDEN"
	// NOTFOUND marks a missing referenced entity.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// EMAILEXISTS marks a user email conflict.
	EMAILEXISTS ErrorCode = "EMAIL_EXISTS"
	// INTERNAL marks a store or dependency failure.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope returned on every failure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code and human-readable message.
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// User is the transport projection of a registered user.
type User struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	TeamID *int64 `json:"team_id"`
	Role   int32  `json:"role"`
}

// Dashboard is the transport projection of a catalog entry.
type Dashboard struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Team is the transport projection of a team with its dashboards.
type Team struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	OwnerID    int64       `json:"owner_id"`
	Dashboards []Dashboard `json:"dashboards"`
}

// MeResponse is the role-scoped view returned by GET /users/me.
type MeResponse struct {
	User  User   `json:"user"`
	Teams []Team `json:"teams"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email  string `json:"email"`
	Role   int32  `json:"role"`
	TeamID *int64 `json:"team_id,omitempty"`
}

// CreateTeamRequest is the body of POST /users/team.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// AddTeamMemberRequest is the body of POST /users/addTeamMember.
type AddTeamMemberRequest struct {
	Email string `json:"email"`
	Role  int32  `json:"role"`
}
