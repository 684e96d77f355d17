package repository

import (
	"testing"

	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryRolesRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewUserRepository()

	user := &entity.User{
		Name:     "Call Center Lead",
		Email:    "lead@example.com",
		Password: "hash",
		Roles:    entity.RoleSet{entity.RoleCallCenter, entity.RoleMayor},
	}
	require.NoError(t, repo.Create(db, user))

	found, err := repo.FindByEmail(db, "LEAD@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, []string{"call-center", "mayor"}, found.Roles.Keys())

	missing, err := repo.FindByEmail(db, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryFindPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewUserRepository()

	for _, u := range []struct{ name, email string }{
		{"Zeena", "zeena@example.com"},
		{"Ali", "ali@example.com"},
		{"Mohamed", "mo@corp.mv"},
	} {
		require.NoError(t, repo.Create(db, &entity.User{Name: u.name, Email: u.email, Password: "x", Roles: entity.RoleSet{entity.RoleAdmin}}))
	}

	users, total, err := repo.FindPage(db, &entity.UserFilter{}, entity.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, users, 2)
	assert.Equal(t, "Ali", users[0].Name)
	assert.Equal(t, "Mohamed", users[1].Name)

	users, total, err = repo.FindPage(db, &entity.UserFilter{Search: "EXAMPLE"}, entity.Page{Number: 1, Size: 15})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, users, 2)
}

func TestUserRepositoryEmailTaken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewUserRepository()

	user := &entity.User{Name: "Ali", Email: "ali@example.com", Password: "x", Roles: entity.RoleSet{entity.RoleAdmin}}
	require.NoError(t, repo.Create(db, user))

	taken, err := repo.EmailTaken(db, "ALI@example.com", nil)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailTaken(db, "ali@example.com", &user.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}
