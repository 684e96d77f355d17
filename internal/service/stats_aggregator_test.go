package service

import (
	"testing"

	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoDistrictVoters() []entity.VoterRecord {
	return []entity.VoterRecord{
		{
			ID:         1,
			Dhaairaa:   testutil.Ptr("A"),
			Sex:        testutil.Ptr("M"),
			VoteStatus: testutil.Ptr("VOTED"),
			Pledge: &entity.Pledge{
				Mayor:   testutil.Choice("PNC"),
				Raeesa:  testutil.Choice("MDP"),
				Council: testutil.Choice("UN"),
				WDC:     testutil.Choice("NOT VOTING"),
			},
		},
		{
			ID:         2,
			Dhaairaa:   testutil.Ptr("B"),
			Sex:        testutil.Ptr("F"),
			VoteStatus: testutil.Ptr("NOT VOTED"),
			Pledge:     &entity.Pledge{Mayor: testutil.Choice("PNC")},
		},
	}
}

func TestAggregateStatsTwoDistricts(t *testing.T) {
	report := AggregateStats(twoDistrictVoters(), entity.NewRoleSet([]string{"admin"}))

	assert.Equal(t, entity.StatsSummary{
		TotalVoters:         2,
		MaleCount:           1,
		FemaleCount:         1,
		VotersWithAnyPledge: 2,
		TotalPledgeEntries:  5,
	}, report.Summary)

	assert.Equal(t, 2, report.OverallPledgeCounts.Get(entity.PledgePNC))
	assert.Equal(t, 1, report.OverallPledgeCounts.Get(entity.PledgeMDP))
	assert.Equal(t, 1, report.OverallPledgeCounts.Get(entity.PledgeUN))
	assert.Equal(t, 1, report.OverallPledgeCounts.Get(entity.PledgeNotVoting))

	require.Len(t, report.PledgeByDhaairaa, 2)
	assert.Equal(t, "A", report.PledgeByDhaairaa[0].Dhaairaa)
	assert.Equal(t, 4, report.PledgeByDhaairaa[0].TotalPledges)
	assert.Equal(t, "B", report.PledgeByDhaairaa[1].Dhaairaa)
	assert.Equal(t, 1, report.PledgeByDhaairaa[1].TotalPledges)

	require.Len(t, report.StatusCounts, 2)
	assert.Equal(t, "voted", report.StatusCounts[0].Label)
	assert.Equal(t, "not voted", report.StatusCounts[1].Label)
}

func TestAggregateStatsBlankHandling(t *testing.T) {
	voters := []entity.VoterRecord{
		{ID: 1, Dhaairaa: nil, Sex: testutil.Ptr(" male "), Pledge: nil},
		{ID: 2, Dhaairaa: testutil.Ptr("  "), Sex: testutil.Ptr("female"), VoteStatus: testutil.Ptr("   "), Pledge: &entity.Pledge{
			Mayor:  testutil.Choice(""),
			Raeesa: testutil.Choice(" PNC "),
		}},
		{ID: 3, Dhaairaa: testutil.Ptr("B9-1"), Pledge: &entity.Pledge{Mayor: testutil.Choice("legacy")}},
	}

	report := AggregateStats(voters, nil)

	assert.Equal(t, 3, report.Summary.TotalVoters)
	assert.Equal(t, 1, report.Summary.MaleCount)
	assert.Equal(t, 1, report.Summary.FemaleCount)
	assert.Equal(t, 2, report.Summary.VotersWithAnyPledge)
	// only exact canonical values are counted as entries
	assert.Equal(t, 0, report.Summary.TotalPledgeEntries)

	require.Len(t, report.PledgeByDhaairaa, 2)
	assert.Equal(t, entity.UnspecifiedDhaairaa, report.PledgeByDhaairaa[0].Dhaairaa)
	assert.Equal(t, 2, report.PledgeByDhaairaa[0].TotalVoters)

	// trimmed canonical values bucket by choice, everything else is Blank
	assert.Equal(t, 1, report.OverallRoleTotals.Raeesa.Get("PNC"))
	assert.Equal(t, 2, report.OverallRoleTotals.Raeesa.Get(entity.BlankBucket))
	assert.Equal(t, 3, report.OverallRoleTotals.Mayor.Get(entity.BlankBucket))

	require.Len(t, report.StatusCounts, 1)
	assert.Equal(t, entity.StatusCount{Label: entity.UnspecifiedStatus, Count: 3}, report.StatusCounts[0])
}

func TestAggregateStatsRoleRowsUseNaturalOrder(t *testing.T) {
	var voters []entity.VoterRecord
	for i, code := range []string{"dhaaira-10", "Dhaaira-2", "dhaaira-1", "dhaaira-10"} {
		voters = append(voters, entity.VoterRecord{ID: int64(i + 1), Dhaairaa: testutil.Ptr(code)})
	}

	report := AggregateStats(voters, nil)

	var labels []string
	for _, row := range report.RoleCountsByDhaairaa {
		labels = append(labels, row.Dhaairaa)
	}
	assert.Equal(t, []string{"dhaaira-1", "Dhaaira-2", "dhaaira-10"}, labels)
	assert.Equal(t, "dhaaira-10", report.PledgeByDhaairaa[0].Dhaairaa)
}

func TestAggregateStatsOverallRoleTotalsCoverEveryVoter(t *testing.T) {
	report := AggregateStats(twoDistrictVoters(), nil)

	assert.Equal(t, report.Summary.TotalVoters, report.OverallRoleTotals.Raeesa.Total())
	assert.Equal(t, report.Summary.TotalVoters, report.OverallRoleTotals.Mayor.Total())
	for _, row := range report.RoleCountsByDhaairaa {
		assert.Equal(t, row.TotalVoters, row.Roles.Council.Total())
		assert.Equal(t, row.TotalVoters, row.Roles.WDC.Total())
	}
}

func TestAggregateStatsEmpty(t *testing.T) {
	report := AggregateStats(nil, nil)

	assert.Zero(t, report.Summary.TotalVoters)
	assert.NotNil(t, report.PledgeByDhaairaa)
	assert.NotNil(t, report.RoleCountsByDhaairaa)
	assert.NotNil(t, report.StatusCounts)
}

func TestCardVisibilityFor(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  entity.CardVisibility
	}{
		{
			name:  "admin sees everything",
			roles: []string{"admin"},
			want: entity.CardVisibility{
				ShowAllTotals: true, ShowAllRoleCards: true,
				ShowOverallRaeesaTotal: true, ShowOverallMayorTotal: true,
				ShowCouncilByDhaairaa: true, ShowWdcByDhaairaa: true,
				ShowRaeesaByDhaairaa: true, ShowMayorByDhaairaa: true,
			},
		},
		{
			name:  "district role sees role cards but no overall totals",
			roles: []string{"dhaaira-1"},
			want: entity.CardVisibility{
				ShowAllRoleCards:      true,
				ShowCouncilByDhaairaa: true, ShowWdcByDhaairaa: true,
				ShowRaeesaByDhaairaa: true, ShowMayorByDhaairaa: true,
			},
		},
		{
			name:  "mayor sees only mayor cards",
			roles: []string{"mayor"},
			want: entity.CardVisibility{
				ShowOverallMayorTotal: true,
				ShowMayorByDhaairaa:   true,
			},
		},
		{
			name:  "raeesa sees only raeesa cards",
			roles: []string{"raeesa"},
			want: entity.CardVisibility{
				ShowOverallRaeesaTotal: true,
				ShowRaeesaByDhaairaa:   true,
			},
		},
		{
			name:  "call center with mayor keeps all cards",
			roles: []string{"mayor", "call-center"},
			want: entity.CardVisibility{
				ShowAllTotals: true, ShowAllRoleCards: true,
				ShowOverallRaeesaTotal: true, ShowOverallMayorTotal: true,
				ShowCouncilByDhaairaa: true, ShowWdcByDhaairaa: true,
				ShowRaeesaByDhaairaa: true, ShowMayorByDhaairaa: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CardVisibilityFor(entity.NewRoleSet(tt.roles))
			assert.Equal(t, tt.want, got)
			if got.ShowAllTotals {
				assert.True(t, got.ShowOverallRaeesaTotal)
				assert.True(t, got.ShowOverallMayorTotal)
			}
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, entity.UnspecifiedStatus, NormalizeStatus(nil))
	assert.Equal(t, entity.UnspecifiedStatus, NormalizeStatus(testutil.Ptr(" ")))
	assert.Equal(t, "voted", NormalizeStatus(testutil.Ptr(" Voted ")))
}
