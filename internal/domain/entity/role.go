// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the staff role a user holds. Values are the persisted wire strings.
type Role string

const (
	// RoleStaff handles complaints assigned to them.
	RoleStaff Role = "موظف"
	// RoleModerator registers complaints and notes but never changes status.
	RoleModerator Role = "موديريتور"
	// RoleTeamLeader may escalate complaints.
	RoleTeamLeader Role = "تيم ليدر"
	// RoleAccountsManager may resolve escalated complaints.
	RoleAccountsManager Role = "مدير حسابات"
	// RoleGeneralManager may escalate and resolve escalated complaints.
	RoleGeneralManager Role = "مدير عام"
)

var roleKeys = map[Role]string{
	RoleStaff:           "staff",
	RoleModerator:       "moderator",
	RoleTeamLeader:      "team_leader",
	RoleAccountsManager: "accounts_manager",
	RoleGeneralManager:  "general_manager",
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Key returns a stable ASCII identifier, used for topics and CLI flags.
func (r Role) Key() string {
	return roleKeys[r]
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleKeys[r]

	return ok
}

// ViewOnly reports whether the role may only observe complaint status.
func (r Role) ViewOnly() bool {
	return r == RoleModerator
}

// IsManager reports whether the role may take administrative decisions.
func (r Role) IsManager() bool {
	return r == RoleGeneralManager || r == RoleAccountsManager
}

// RoleFromKey resolves an ASCII key or wire value into a Role.
func RoleFromKey(s string) (Role, bool) {
	if Role(s).IsValid() {
		return Role(s), true
	}
	for role, key := range roleKeys {
		if key == s {
			return role, true
		}
	}

	return "", false
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Actor identifies who performs an operation. Every core operation receives one.
type Actor struct {
	UserID   string
	UserName string
	Role     Role
}

// SystemActor attributes entries produced without a human actor.
var SystemActor = Actor{UserID: "system", UserName: "System"}
