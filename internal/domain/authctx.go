package domain

import "github.com/google/uuid"

type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// AuthContext identifies the caller of a service operation. It is built once
// by the auth middleware and passed explicitly to every service call; there is
// no ambient request state. UniversityID is uuid.Nil for superadmins, which
// operate at platform level.
type AuthContext struct {
	UserID       uuid.UUID
	Role         Role
	UniversityID uuid.UUID
}

func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

func (a AuthContext) SameTenant(universityID uuid.UUID) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	return a.UniversityID == universityID
}
