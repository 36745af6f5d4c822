package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "Student"
	RoleMentor  RoleType = "Mentor"
	RoleAdmin   RoleType = "Admin"
)

// Roles lists every role in display order.
var Roles = []RoleType{RoleAdmin, RoleStudent, RoleMentor}

// IsValid reports whether r is a known role.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// IsSelfRegistrable reports whether the role may be chosen at public registration.
func (r RoleType) IsSelfRegistrable() bool {
	return r == RoleStudent || r == RoleMentor
}
