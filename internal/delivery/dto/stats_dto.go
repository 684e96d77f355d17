package dto

import "voter-pledge-admin/internal/domain/entity"

type StatsResponse struct {
	Summary              entity.StatsSummary        `json:"summary"`
	PledgeOptions        []string                   `json:"pledgeOptions"`
	PledgeByDhaairaa     []entity.DhaairaaPledgeRow `json:"pledgeByDhaairaa"`
	OverallPledgeCounts  entity.PledgeCounts        `json:"overallPledgeCounts"`
	RoleCountsByDhaairaa []entity.DhaairaaRoleRow   `json:"roleCountsByDhaairaa"`
	OverallRoleTotals    entity.HeadlineBuckets     `json:"overallRoleTotals"`
	CardVisibility       entity.CardVisibility      `json:"cardVisibility"`
	StatusCounts         []entity.StatusCount       `json:"statusCounts"`
}
