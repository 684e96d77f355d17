package repository

import (
	"errors"
	"strings"

	"voter-pledge-admin/internal/domain/entity"
	domainRepo "voter-pledge-admin/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type voterRepository struct{}

func NewVoterRepository() domainRepo.VoterRepository {
	return &voterRepository{}
}

func (r *voterRepository) Create(db *gorm.DB, voter *entity.VoterRecord) error {
	return db.Create(voter).Error
}

// FindPage returns one page ordered by list number and whether a further page exists.
func (r *voterRepository) FindPage(db *gorm.DB, scope entity.AccessScope, filter *entity.VoterFilter, page entity.Page) ([]entity.VoterRecord, bool, error) {
	query := db.Model(&entity.VoterRecord{}).Scopes(VoterScope(scope))

	if filter != nil {
		if filter.Search != "" {
			pattern := "%" + strings.ToLower(filter.Search) + "%"
			query = query.Where(
				"LOWER(id_card_number) LIKE ? OR LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(mobile) LIKE ?",
				pattern, pattern, pattern, pattern,
			)
		}
		if filter.Dhaairaa != "" {
			query = query.Where("dhaairaa = ?", filter.Dhaairaa)
		}
		if filter.MajilisCon != "" {
			query = query.Where("majilis_con = ?", filter.MajilisCon)
		}
	}

	var voters []entity.VoterRecord
	err := query.
		Preload("Pledge").
		Order("list_number ASC").
		Offset(page.Offset()).
		Limit(page.Size + 1).
		Find(&voters).Error
	if err != nil {
		return nil, false, err
	}

	hasMore := len(voters) > page.Size
	if hasMore {
		voters = voters[:page.Size]
	}
	return voters, hasMore, nil
}

func (r *voterRepository) FindByIDInScope(db *gorm.DB, scope entity.AccessScope, id int64) (*entity.VoterRecord, error) {
	var voter entity.VoterRecord
	err := db.Scopes(VoterScope(scope)).Preload("Pledge").Where("id = ?", id).First(&voter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &voter, nil
}

func (r *voterRepository) ExistsInScope(db *gorm.DB, scope entity.AccessScope, id int64) (bool, error) {
	var count int64
	err := db.Model(&entity.VoterRecord{}).Scopes(VoterScope(scope)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *voterRepository) FindForStats(db *gorm.DB, scope entity.AccessScope) ([]entity.VoterRecord, error) {
	var voters []entity.VoterRecord
	err := db.Scopes(VoterScope(scope)).
		Select("id", "dhaairaa", "sex", "vote_status", "photo_path").
		Preload("Pledge").
		Order("id ASC").
		Find(&voters).Error
	if err != nil {
		return nil, err
	}
	return voters, nil
}

func (r *voterRepository) DistinctDhaairaa(db *gorm.DB, scope entity.AccessScope) ([]string, error) {
	return r.distinct(db, scope, "dhaairaa")
}

func (r *voterRepository) DistinctMajilisCon(db *gorm.DB, scope entity.AccessScope) ([]string, error) {
	return r.distinct(db, scope, "majilis_con")
}

func (r *voterRepository) distinct(db *gorm.DB, scope entity.AccessScope, column string) ([]string, error) {
	values := []string{}
	err := db.Model(&entity.VoterRecord{}).
		Scopes(VoterScope(scope)).
		Where(column+" IS NOT NULL").
		Where(column+" <> ?", "").
		Distinct().
		Order(column+" ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *voterRepository) UpdateContact(db *gorm.DB, id int64, update *entity.VoterContactUpdate) error {
	return db.Model(&entity.VoterRecord{}).Where("id = ?", id).Updates(map[string]interface{}{
		"mobile":        update.Mobile,
		"re_reg_travel": update.ReRegTravel,
		"comments":      update.Comments,
	}).Error
}

// UpsertPledge creates the pledge row for a voter or replaces its four values.
func (r *voterRepository) UpsertPledge(db *gorm.DB, voterID int64, update *entity.PledgeUpdate) error {
	pledge := &entity.Pledge{
		VoterID: voterID,
		Mayor:   update.Mayor,
		Raeesa:  update.Raeesa,
		Council: update.Council,
		WDC:     update.WDC,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "voter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mayor", "raeesa", "council", "wdc", "updated_at"}),
	}).Create(pledge).Error
}
