package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoterListKeyIncludesEveryComponent(t *testing.T) {
	userID := uuid.New()
	base := VoterListKey{
		UserID: userID,
		Roles:  entity.RoleSet{entity.RoleDhaaira1},
		Filter: entity.VoterFilter{Search: "ali hassan", Dhaairaa: "B9-1"},
		Page:   2,
	}

	key := base.String()
	assert.True(t, strings.HasPrefix(key, "voters:list:user="+userID.String()))
	assert.Contains(t, key, "search=ali+hassan")
	assert.Contains(t, key, "dhaairaa=B9-1")
	assert.Contains(t, key, "page=2")

	variants := []VoterListKey{base, base, base, base, base}
	variants[0].UserID = uuid.New()
	variants[1].Roles = entity.RoleSet{entity.RoleDhaaira2}
	variants[2].Filter.Search = "ali"
	variants[3].Filter.MajilisCon = "Male North"
	variants[4].Page = 3
	for _, v := range variants {
		assert.NotEqual(t, key, v.String())
	}
}

func TestRoleSetHashIgnoresOrder(t *testing.T) {
	a := entity.RoleSet{entity.RoleMayor, entity.RoleCallCenter}
	b := entity.RoleSet{entity.RoleCallCenter, entity.RoleMayor}

	assert.Equal(t, RoleSetHash(a), RoleSetHash(b))
	assert.NotEqual(t, RoleSetHash(a), RoleSetHash(entity.RoleSet{entity.RoleMayor}))
	assert.Len(t, RoleSetHash(a), 16)
}

func TestRememberCachesLoadedValue(t *testing.T) {
	mr, client := testutil.SetupTestRedis(t)
	log, _ := testutil.NewTestLogger()
	c := NewVoterCache(client, log, TTLPolicy{List: time.Minute})
	key := FilterOptionsKey{UserID: uuid.New(), Column: "dhaairaa"}

	calls := 0
	load := func() ([]string, error) {
		calls++
		return []string{"B9-1", "B9-2"}, nil
	}

	first, err := Remember(context.Background(), c, key, c.TTL.List, load)
	require.NoError(t, err)
	second, err := Remember(context.Background(), c, key, c.TTL.List, load)
	require.NoError(t, err)

	assert.Equal(t, []string{"B9-1", "B9-2"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists(key.String()))
	assert.Equal(t, time.Minute, mr.TTL(key.String()))

	mr.FastForward(2 * time.Minute)
	_, err = Remember(context.Background(), c, key, c.TTL.List, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRememberDoesNotCacheErrors(t *testing.T) {
	mr, client := testutil.SetupTestRedis(t)
	log, _ := testutil.NewTestLogger()
	c := NewVoterCache(client, log, TTLPolicy{List: time.Minute})
	key := FilterOptionsKey{UserID: uuid.New(), Column: "majilis_con"}

	boom := errors.New("boom")
	_, err := Remember(context.Background(), c, key, time.Minute, func() ([]string, error) { return nil, boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists(key.String()))
}

func TestRememberFallsBackWhenRedisIsDown(t *testing.T) {
	mr, client := testutil.SetupTestRedis(t)
	log, hook := testutil.NewTestLogger()
	c := NewVoterCache(client, log, TTLPolicy{List: time.Minute})
	mr.Close()

	value, err := Remember(context.Background(), c, FilterOptionsKey{Column: "dhaairaa"}, time.Minute, func() (int, error) { return 7, nil })

	require.NoError(t, err)
	assert.Equal(t, 7, value)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestRememberWithoutClientAlwaysLoads(t *testing.T) {
	calls := 0
	for i := 0; i < 2; i++ {
		_, err := Remember(context.Background(), nil, FilterOptionsKey{}, time.Minute, func() (int, error) {
			calls++
			return calls, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}
