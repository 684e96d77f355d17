package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("  dhaaira-3 ")
	assert.True(t, ok)
	assert.Equal(t, RoleDhaaira3, role)

	_, ok = ParseRole("superuser")
	assert.False(t, ok)
}

func TestRoleLabelsAndAccess(t *testing.T) {
	assert.Equal(t, "Call Center", RoleCallCenter.Label())
	assert.Equal(t, "Dhaaira 6", RoleDhaaira6.Label())
	assert.Equal(t, "unknown", Role("unknown").Label())

	for _, role := range []Role{RoleAdmin, RoleCallCenter, RoleMayor, RoleRaeesa} {
		assert.True(t, role.GrantsFullAccess(), role)
		_, scoped := role.DhaairaaCode()
		assert.False(t, scoped, role)
	}

	code, ok := RoleDhaaira4.DhaairaaCode()
	assert.True(t, ok)
	assert.Equal(t, "B9-4", code)
	assert.False(t, RoleDhaaira4.GrantsFullAccess())
}

func TestNewRoleSetKeepsFirstOccurrenceOrder(t *testing.T) {
	set := NewRoleSet([]string{"call-center", " mayor", "call-center", "bogus", "", "mayor"})

	assert.Equal(t, []string{"call-center", "mayor"}, set.Keys())
	assert.Equal(t, []string{"call-center", "mayor"}, set.SortedKeys())
}

func TestRoleSetDhaairaaCodes(t *testing.T) {
	set := NewRoleSet([]string{"dhaaira-2", "dhaaira-5", "dhaaira-2"})

	assert.Equal(t, []string{"B9-2", "B9-5"}, set.DhaairaaCodes())
	assert.False(t, set.HasFullVoterAccess())
	assert.False(t, set.IsAdmin())
}

func TestAllRolesAreDefined(t *testing.T) {
	assert.Len(t, AllRoles, 10)
	for _, role := range AllRoles {
		assert.True(t, role.Valid(), role)
	}
}
