package entity

import "github.com/google/uuid"

// Principal is the authenticated caller, passed explicitly into every
// scoped usecase call.
type Principal struct {
	UserID uuid.UUID
	Roles  RoleSet
}

// AccessScope restricts which voter rows a principal may read or edit.
// The zero value denies everything.
type AccessScope struct {
	All           bool
	DhaairaaCodes []string
}

// ScopeFor derives the voter access scope for a principal. A nil principal
// is unauthenticated and gets no rows.
func ScopeFor(p *Principal) AccessScope {
	if p == nil {
		return AccessScope{}
	}
	if p.Roles.HasFullVoterAccess() {
		return AccessScope{All: true}
	}
	return AccessScope{DhaairaaCodes: p.Roles.DhaairaaCodes()}
}

// DeniesAll reports whether no row can ever satisfy the scope.
func (s AccessScope) DeniesAll() bool {
	return !s.All && len(s.DhaairaaCodes) == 0
}

// Allows applies the scope to a single district code.
func (s AccessScope) Allows(dhaairaa *string) bool {
	if s.All {
		return true
	}
	if dhaairaa == nil {
		return false
	}
	for _, code := range s.DhaairaaCodes {
		if code == *dhaairaa {
			return true
		}
	}
	return false
}
