package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/repository"
	"voter-pledge-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsUsecaseGetIsScoped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log, _ := testutil.NewTestLogger()
	repo := repository.NewVoterRepository()

	require.NoError(t, repo.Create(db, &entity.VoterRecord{ListNumber: 1, Dhaairaa: testutil.Ptr("B9-1"), Sex: testutil.Ptr("M"),
		Pledge: &entity.Pledge{Mayor: testutil.Choice("PNC"), Raeesa: testutil.Choice("UN")}}))
	require.NoError(t, repo.Create(db, &entity.VoterRecord{ListNumber: 2, Dhaairaa: testutil.Ptr("B9-2"), Sex: testutil.Ptr("F"),
		Pledge: &entity.Pledge{Mayor: testutil.Choice("MDP")}}))

	uc := NewStatsUsecase(db, log, repo)

	stats, err := uc.Get(context.Background(), principalWith("dhaaira-2"))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Summary.TotalVoters)
	assert.Equal(t, 1, stats.Summary.FemaleCount)
	assert.Equal(t, 1, stats.OverallPledgeCounts.Get(entity.PledgeMDP))
	assert.False(t, stats.CardVisibility.ShowAllTotals)

	all, err := uc.Get(context.Background(), principalWith("raeesa"))
	require.NoError(t, err)
	assert.Equal(t, 2, all.Summary.TotalVoters)
	assert.Equal(t, 3, all.Summary.TotalPledgeEntries)
	assert.True(t, all.CardVisibility.ShowOverallRaeesaTotal)
	assert.False(t, all.CardVisibility.ShowCouncilByDhaairaa)

	none, err := uc.Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, none.Summary.TotalVoters)
}

func TestStatsResponseJSONKeys(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log, _ := testutil.NewTestLogger()
	uc := NewStatsUsecase(db, log, repository.NewVoterRepository())

	stats, err := uc.Get(context.Background(), principalWith("admin"))
	require.NoError(t, err)

	raw, err := json.Marshal(stats)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"summary", "pledgeOptions", "pledgeByDhaairaa", "overallPledgeCounts",
		"roleCountsByDhaairaa", "overallRoleTotals", "cardVisibility", "statusCounts",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.JSONEq(t, `{"PNC":0,"MDP":0,"UN":0,"NOT VOTING":0}`, string(decoded["overallPledgeCounts"]))
	assert.JSONEq(t, `[]`, string(decoded["pledgeByDhaairaa"]))
}
