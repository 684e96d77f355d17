package usecase

import (
	"context"
	"errors"

	"voter-pledge-admin/config"
	"voter-pledge-admin/internal/converter"
	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/domain/repository"
	"voter-pledge-admin/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVoterNotFound  = errors.New("voter not found")
	ErrVoterForbidden = errors.New("voter is outside the caller's access scope")
)

type VoterUsecase interface {
	List(ctx context.Context, principal *entity.Principal, req *dto.VoterListRequest) (*dto.VoterListResponse, error)
	Update(ctx context.Context, principal *entity.Principal, id int64, req *dto.UpdateVoterRequest) (*dto.VoterResponse, error)
}

type voterUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	voterRepo repository.VoterRepository
	cache     *cache.VoterCache
	converter *converter.VoterConverter
	cfg       config.VotersConfig
}

func NewVoterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	voterRepo repository.VoterRepository,
	voterCache *cache.VoterCache,
	voterConverter *converter.VoterConverter,
	cfg config.VotersConfig,
) VoterUsecase {
	if cfg.PageSize < 1 {
		cfg.PageSize = 15
	}
	return &voterUsecase{
		db:        db,
		log:       log,
		voterRepo: voterRepo,
		cache:     voterCache,
		converter: voterConverter,
		cfg:       cfg,
	}
}

func (u *voterUsecase) List(ctx context.Context, principal *entity.Principal, req *dto.VoterListRequest) (*dto.VoterListResponse, error) {
	db := u.db.WithContext(ctx)
	scope := entity.ScopeFor(principal)
	userID, roles := principalKey(principal)

	filter := entity.VoterFilter{
		Search:     req.Search,
		Dhaairaa:   req.Dhaairaa,
		MajilisCon: req.MajilisCon,
	}
	page := entity.Page{Number: req.Page, Size: u.cfg.PageSize}

	listKey := cache.VoterListKey{UserID: userID, Roles: roles, Filter: filter, Page: page.Number}
	voterPage, err := cache.Remember(ctx, u.cache, listKey, u.cacheTTL().List, func() (dto.VoterPage, error) {
		voters, hasMore, err := u.voterRepo.FindPage(db, scope, &filter, page)
		if err != nil {
			return dto.VoterPage{}, err
		}
		return dto.VoterPage{Voters: u.converter.ToResponses(voters), HasMore: hasMore}, nil
	})
	if err != nil {
		u.log.Warnf("Failed to list voters: %+v", err)
		return nil, err
	}

	dhaairaaOptions, err := cache.Remember(ctx, u.cache,
		cache.FilterOptionsKey{UserID: userID, Roles: roles, Column: "dhaairaa"},
		u.cacheTTL().FilterOptions,
		func() ([]string, error) { return u.voterRepo.DistinctDhaairaa(db, scope) },
	)
	if err != nil {
		u.log.Warnf("Failed to load dhaairaa options: %+v", err)
		return nil, err
	}

	majilisOptions, err := cache.Remember(ctx, u.cache,
		cache.FilterOptionsKey{UserID: userID, Roles: roles, Column: "majilis_con"},
		u.cacheTTL().FilterOptions,
		func() ([]string, error) { return u.voterRepo.DistinctMajilisCon(db, scope) },
	)
	if err != nil {
		u.log.Warnf("Failed to load majilis constituency options: %+v", err)
		return nil, err
	}

	var selected *dto.VoterResponse
	if u.cfg.SelectedEnabled && req.Selected != nil {
		voter, err := u.voterRepo.FindByIDInScope(db, scope, *req.Selected)
		if err != nil {
			u.log.Warnf("Failed to find selected voter: %+v", err)
			return nil, err
		}
		selected = u.converter.ToResponse(voter)
	}

	return &dto.VoterListResponse{
		Voters: voterPage.Voters,
		Filters: dto.VoterFilters{
			Search:     req.Search,
			Dhaairaa:   req.Dhaairaa,
			MajilisCon: req.MajilisCon,
		},
		FilterOptions: dto.VoterFilterOptions{
			Dhaairaa:   dhaairaaOptions,
			MajilisCon: majilisOptions,
		},
		SelectedVoter: selected,
		PledgeOptions: converter.PledgeOptions(),
		Page:          page.Number,
		PerPage:       page.Size,
		HasMore:       voterPage.HasMore,
	}, nil
}

// Update replaces the editable contact fields and the full pledge of a voter
// the caller is allowed to see.
func (u *voterUsecase) Update(ctx context.Context, principal *entity.Principal, id int64, req *dto.UpdateVoterRequest) (*dto.VoterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.voterRepo.ExistsInScope(tx, entity.AccessScope{All: true}, id)
	if err != nil {
		u.log.Warnf("Failed to find voter: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrVoterNotFound
	}

	scope := entity.ScopeFor(principal)
	allowed, err := u.voterRepo.ExistsInScope(tx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to check voter scope: %+v", err)
		return nil, err
	}
	if !allowed {
		return nil, ErrVoterForbidden
	}

	if err := u.voterRepo.UpdateContact(tx, id, converter.UpdateRequestToContact(req)); err != nil {
		u.log.Warnf("Failed to update voter: %+v", err)
		return nil, err
	}

	if err := u.voterRepo.UpsertPledge(tx, id, converter.UpdateRequestToPledge(req)); err != nil {
		u.log.Warnf("Failed to save pledge: %+v", err)
		return nil, err
	}

	voter, err := u.voterRepo.FindByIDInScope(tx, scope, id)
	if err != nil {
		u.log.Warnf("Failed to reload voter: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.converter.ToResponse(voter), nil
}

func (u *voterUsecase) cacheTTL() cache.TTLPolicy {
	if u.cache == nil {
		return cache.TTLPolicy{}
	}
	return u.cache.TTL
}

func principalKey(principal *entity.Principal) (uuid.UUID, entity.RoleSet) {
	if principal == nil {
		return uuid.Nil, nil
	}
	return principal.UserID, principal.Roles
}
