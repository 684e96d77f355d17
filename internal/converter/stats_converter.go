package converter

import (
	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/domain/entity"
)

func StatsReportToResponse(report *entity.StatsReport) *dto.StatsResponse {
	if report == nil {
		return nil
	}

	return &dto.StatsResponse{
		Summary:              report.Summary,
		PledgeOptions:        PledgeOptions(),
		PledgeByDhaairaa:     report.PledgeByDhaairaa,
		OverallPledgeCounts:  report.OverallPledgeCounts,
		RoleCountsByDhaairaa: report.RoleCountsByDhaairaa,
		OverallRoleTotals:    report.OverallRoleTotals,
		CardVisibility:       report.CardVisibility,
		StatusCounts:         report.StatusCounts,
	}
}
