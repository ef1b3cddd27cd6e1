package model

import "github.com/google/uuid"

type Role string

const (
	RoleRICDStaff      Role = "RICD_STAFF"
	RoleRICDManager    Role = "RICD_MANAGER"
	RoleCouncilUser    Role = "COUNCIL_USER"
	RoleCouncilManager Role = "COUNCIL_MANAGER"
)

// Principal is the authenticated caller, resolved once per request from the
// access token. CouncilID is nil for RICD roles.
type Principal struct {
	UserID    uuid.UUID
	Role      Role
	CouncilID *uuid.UUID
}

func (p Principal) IsRICD() bool {
	return p.Role == RoleRICDStaff || p.Role == RoleRICDManager
}

func (p Principal) IsRICDManager() bool {
	return p.Role == RoleRICDManager
}

func (p Principal) IsCouncil() bool {
	return p.Role == RoleCouncilUser || p.Role == RoleCouncilManager
}

func (p Principal) IsCouncilManager() bool {
	return p.Role == RoleCouncilManager
}

// Council returns the council the principal belongs to, or false for RICD
// principals, which are not scoped to any council.
func (p Principal) Council() (uuid.UUID, bool) {
	if p.CouncilID == nil {
		return uuid.Nil, false
	}
	return *p.CouncilID, true
}

// CanAccessCouncil reports whether the principal may read data belonging to
// the given council.
func (p Principal) CanAccessCouncil(councilID uuid.UUID) bool {
	if p.IsRICD() {
		return true
	}
	return p.CouncilID != nil && *p.CouncilID == councilID
}

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleRICDStaff, RoleRICDManager, RoleCouncilUser, RoleCouncilManager:
		return Role(raw), true
	default:
		return "", false
	}
}
