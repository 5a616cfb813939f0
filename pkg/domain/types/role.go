package types

import "fmt"

// Role identifies the organizational role of a caller
type Role string

const (
	RoleProsecutor    Role = "prosecutor"
	RoleLeadership    Role = "leadership"
	RoleJudge         Role = "judge"
	RoleMarshal       Role = "marshal"
	RoleAdministrator Role = "administrator"
	RoleClerk         Role = "clerk"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{
		RoleProsecutor,
		RoleLeadership,
		RoleJudge,
		RoleMarshal,
		RoleAdministrator,
		RoleClerk,
	}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	for _, v := range AllRoles() {
		if r == v {
			return true
		}
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}
