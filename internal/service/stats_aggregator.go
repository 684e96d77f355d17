package service

import (
	"sort"
	"strings"

	"voter-pledge-admin/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// headlineOffices are the offices that get an ungrouped total card.
var headlineOffices = []entity.Office{entity.OfficeRaeesa, entity.OfficeMayor}

// AggregateStats builds the statistics report from voters that have already
// been restricted to the caller's access scope. Pledges must be preloaded.
func AggregateStats(voters []entity.VoterRecord, roles entity.RoleSet) *entity.StatsReport {
	report := &entity.StatsReport{
		PledgeByDhaairaa:     []entity.DhaairaaPledgeRow{},
		RoleCountsByDhaairaa: []entity.DhaairaaRoleRow{},
		StatusCounts:         []entity.StatusCount{},
		CardVisibility:       CardVisibilityFor(roles),
	}

	pledgeRows := map[string]*entity.DhaairaaPledgeRow{}
	roleRows := map[string]*entity.DhaairaaRoleRow{}
	var dhaairaaOrder []string
	statusCounts := map[string]int{}
	var statusOrder []string

	for i := range voters {
		voter := &voters[i]
		pledge := voter.Pledge

		report.Summary.TotalVoters++
		switch normalizeSex(voter.Sex) {
		case "M", "MALE":
			report.Summary.MaleCount++
		case "F", "FEMALE":
			report.Summary.FemaleCount++
		}
		if pledge.HasAny() {
			report.Summary.VotersWithAnyPledge++
		}

		dhaairaa := entity.NormalizeDhaairaa(voter.Dhaairaa)
		pledgeRow, ok := pledgeRows[dhaairaa]
		if !ok {
			pledgeRow = &entity.DhaairaaPledgeRow{Dhaairaa: dhaairaa}
			pledgeRows[dhaairaa] = pledgeRow
			roleRows[dhaairaa] = &entity.DhaairaaRoleRow{Dhaairaa: dhaairaa}
			dhaairaaOrder = append(dhaairaaOrder, dhaairaa)
		}
		roleRow := roleRows[dhaairaa]
		pledgeRow.TotalVoters++
		roleRow.TotalVoters++

		for _, office := range entity.Offices {
			value := pledge.For(office)
			pledgeRow.PledgeCounts.Add(value)
			report.OverallPledgeCounts.Add(value)
			roleRow.Roles.For(office).Add(value)
		}
		for _, office := range headlineOffices {
			report.OverallRoleTotals.For(office).Add(pledge.For(office))
		}

		status := NormalizeStatus(voter.VoteStatus)
		if _, seen := statusCounts[status]; !seen {
			statusOrder = append(statusOrder, status)
		}
		statusCounts[status]++
	}

	report.Summary.TotalPledgeEntries = report.OverallPledgeCounts.Total()

	for _, dhaairaa := range dhaairaaOrder {
		row := pledgeRows[dhaairaa]
		row.TotalPledges = row.PledgeCounts.Total()
		report.PledgeByDhaairaa = append(report.PledgeByDhaairaa, *row)
		report.RoleCountsByDhaairaa = append(report.RoleCountsByDhaairaa, *roleRows[dhaairaa])
	}
	// Ties keep first-seen order.
	sort.SliceStable(report.PledgeByDhaairaa, func(i, j int) bool {
		return report.PledgeByDhaairaa[i].TotalVoters > report.PledgeByDhaairaa[j].TotalVoters
	})
	sort.SliceStable(report.RoleCountsByDhaairaa, func(i, j int) bool {
		return NaturalLess(report.RoleCountsByDhaairaa[i].Dhaairaa, report.RoleCountsByDhaairaa[j].Dhaairaa)
	})

	for _, status := range statusOrder {
		report.StatusCounts = append(report.StatusCounts, entity.StatusCount{Label: status, Count: statusCounts[status]})
	}
	sort.SliceStable(report.StatusCounts, func(i, j int) bool {
		return report.StatusCounts[i].Count > report.StatusCounts[j].Count
	})

	return report
}

// CardVisibilityFor derives which statistics cards a role set may see.
// It does not depend on the data.
func CardVisibilityFor(roles entity.RoleSet) entity.CardVisibility {
	showAllTotals := roles.HasAny(entity.RoleAdmin, entity.RoleCallCenter)
	isMayor := roles.Has(entity.RoleMayor)
	isRaeesa := roles.Has(entity.RoleRaeesa)
	showAllRoleCards := showAllTotals || (!isMayor && !isRaeesa)

	return entity.CardVisibility{
		ShowAllTotals:          showAllTotals,
		ShowAllRoleCards:       showAllRoleCards,
		ShowOverallRaeesaTotal: showAllTotals || isRaeesa,
		ShowOverallMayorTotal:  showAllTotals || isMayor,
		ShowCouncilByDhaairaa:  showAllRoleCards,
		ShowWdcByDhaairaa:      showAllRoleCards,
		ShowRaeesaByDhaairaa:   showAllRoleCards || showAllTotals || isRaeesa,
		ShowMayorByDhaairaa:    showAllRoleCards || showAllTotals || isMayor,
	}
}

// NormalizeStatus trims and lower-cases a vote status; blank becomes
// entity.UnspecifiedStatus.
func NormalizeStatus(value *string) string {
	if value == nil {
		return entity.UnspecifiedStatus
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return entity.UnspecifiedStatus
	}
	return cases.Lower(language.Und).String(trimmed)
}

func normalizeSex(value *string) string {
	if value == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(*value))
}
