package entity

import "time"

// Role is the closed set of crew and reviewer roles.
type Role string

const (
	RoleChef     Role = "chef"
	RoleBarman   Role = "barman"
	RoleCaptain  Role = "captain"
	RoleSteward  Role = "steward"
	RoleMechanic Role = "mechanic"
	RoleManager  Role = "manager"
	RoleOwner    Role = "owner"
)

// SubmitterRoles are the roles allowed to submit supply requests.
var SubmitterRoles = []Role{RoleChef, RoleBarman, RoleCaptain, RoleSteward, RoleMechanic}

// ReviewerRoles are the roles allowed to review requests and mutate the catalog.
var ReviewerRoles = []Role{RoleManager, RoleOwner}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleChef, RoleBarman, RoleCaptain, RoleSteward, RoleMechanic, RoleManager, RoleOwner:
		return true
	}
	return false
}

// User is an identity record. Users are created out-of-band (seed or admin
// tooling); there is no self-registration. Role is immutable after creation.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns a copy stripped of credential secrets for API responses.
func (u *User) Public() *User {
	pub := *u
	pub.PasswordHash = ""
	return &pub
}
