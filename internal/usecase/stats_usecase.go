package usecase

import (
	"context"

	"voter-pledge-admin/internal/converter"
	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/domain/repository"
	"voter-pledge-admin/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StatsUsecase interface {
	Get(ctx context.Context, principal *entity.Principal) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	voterRepo repository.VoterRepository
}

func NewStatsUsecase(db *gorm.DB, log *logrus.Logger, voterRepo repository.VoterRepository) StatsUsecase {
	return &statsUsecase{
		db:        db,
		log:       log,
		voterRepo: voterRepo,
	}
}

func (u *statsUsecase) Get(ctx context.Context, principal *entity.Principal) (*dto.StatsResponse, error) {
	voters, err := u.voterRepo.FindForStats(u.db.WithContext(ctx), entity.ScopeFor(principal))
	if err != nil {
		u.log.Warnf("Failed to load voters for stats: %+v", err)
		return nil, err
	}

	var roles entity.RoleSet
	if principal != nil {
		roles = principal.Roles
	}

	report := service.AggregateStats(voters, roles)
	u.log.WithFields(logrus.Fields{
		"voters":   report.Summary.TotalVoters,
		"dhaairaa": len(report.PledgeByDhaairaa),
	}).Debug("Aggregated voter stats")

	return converter.StatsReportToResponse(report), nil
}
