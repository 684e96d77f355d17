package entity

import (
	"sort"
	"strings"
)

// Role is one of the fixed set of user roles. Roles are not stored in their
// own table; a user carries a list of role keys.
type Role string

// Role keys
const (
	RoleAdmin      Role = "admin"
	RoleCallCenter Role = "call-center"
	RoleDhaaira1   Role = "dhaaira-1"
	RoleDhaaira2   Role = "dhaaira-2"
	RoleDhaaira3   Role = "dhaaira-3"
	RoleDhaaira4   Role = "dhaaira-4"
	RoleDhaaira5   Role = "dhaaira-5"
	RoleDhaaira6   Role = "dhaaira-6"
	RoleRaeesa     Role = "raeesa"
	RoleMayor      Role = "mayor"
)

type roleDefinition struct {
	label      string
	fullAccess bool
	dhaairaa   string
}

// roleTable is the single source of truth for labels, full voter access and
// the district code a role is restricted to.
var roleTable = map[Role]roleDefinition{
	RoleAdmin:      {label: "Admin", fullAccess: true},
	RoleCallCenter: {label: "Call Center", fullAccess: true},
	RoleDhaaira1:   {label: "Dhaaira 1", dhaairaa: "B9-1"},
	RoleDhaaira2:   {label: "Dhaaira 2", dhaairaa: "B9-2"},
	RoleDhaaira3:   {label: "Dhaaira 3", dhaairaa: "B9-3"},
	RoleDhaaira4:   {label: "Dhaaira 4", dhaairaa: "B9-4"},
	RoleDhaaira5:   {label: "Dhaaira 5", dhaairaa: "B9-5"},
	RoleDhaaira6:   {label: "Dhaaira 6", dhaairaa: "B9-6"},
	RoleRaeesa:     {label: "Raeesa", fullAccess: true},
	RoleMayor:      {label: "Mayor", fullAccess: true},
}

// AllRoles lists every role in declaration order.
var AllRoles = []Role{
	RoleAdmin,
	RoleCallCenter,
	RoleDhaaira1,
	RoleDhaaira2,
	RoleDhaaira3,
	RoleDhaaira4,
	RoleDhaaira5,
	RoleDhaaira6,
	RoleRaeesa,
	RoleMayor,
}

// ParseRole trims the key and reports whether it names a known role.
func ParseRole(key string) (Role, bool) {
	role := Role(strings.TrimSpace(key))
	_, ok := roleTable[role]
	return role, ok
}

func (r Role) Valid() bool {
	_, ok := roleTable[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// Label returns the human readable name, or the raw key for unknown roles.
func (r Role) Label() string {
	if def, ok := roleTable[r]; ok {
		return def.label
	}
	return string(r)
}

// GrantsFullAccess reports whether the role can see voters in every district.
func (r Role) GrantsFullAccess() bool {
	return roleTable[r].fullAccess
}

// DhaairaaCode returns the district code a role is restricted to.
func (r Role) DhaairaaCode() (string, bool) {
	code := roleTable[r].dhaairaa
	return code, code != ""
}

// RoleSet is the ordered, de-duplicated list of valid roles held by a user.
type RoleSet []Role

// NewRoleSet drops blank, unknown and repeated keys while keeping the first
// occurrence order.
func NewRoleSet(keys []string) RoleSet {
	set := make(RoleSet, 0, len(keys))
	seen := make(map[Role]struct{}, len(keys))
	for _, key := range keys {
		role, ok := ParseRole(key)
		if !ok {
			continue
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		set = append(set, role)
	}
	return set
}

func (s RoleSet) Has(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

func (s RoleSet) HasAny(roles ...Role) bool {
	for _, role := range roles {
		if s.Has(role) {
			return true
		}
	}
	return false
}

func (s RoleSet) IsAdmin() bool {
	return s.Has(RoleAdmin)
}

// HasFullVoterAccess reports whether any held role bypasses district scoping.
func (s RoleSet) HasFullVoterAccess() bool {
	for _, r := range s {
		if r.GrantsFullAccess() {
			return true
		}
	}
	return false
}

// DhaairaaCodes returns the distinct district codes mapped from the held roles.
func (s RoleSet) DhaairaaCodes() []string {
	codes := make([]string, 0, len(s))
	seen := make(map[string]struct{}, len(s))
	for _, r := range s {
		code, ok := r.DhaairaaCode()
		if !ok {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

// Keys returns the role keys as plain strings.
func (s RoleSet) Keys() []string {
	keys := make([]string, len(s))
	for i, r := range s {
		keys[i] = string(r)
	}
	return keys
}

// SortedKeys returns the role keys in lexical order, independent of the order
// they were assigned in.
func (s RoleSet) SortedKeys() []string {
	keys := s.Keys()
	sort.Strings(keys)
	return keys
}
