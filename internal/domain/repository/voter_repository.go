package repository

import (
	"voter-pledge-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type VoterRepository interface {
	Create(db *gorm.DB, voter *entity.VoterRecord) error
	FindPage(db *gorm.DB, scope entity.AccessScope, filter *entity.VoterFilter, page entity.Page) ([]entity.VoterRecord, bool, error)
	FindByIDInScope(db *gorm.DB, scope entity.AccessScope, id int64) (*entity.VoterRecord, error)
	ExistsInScope(db *gorm.DB, scope entity.AccessScope, id int64) (bool, error)
	FindForStats(db *gorm.DB, scope entity.AccessScope) ([]entity.VoterRecord, error)
	DistinctDhaairaa(db *gorm.DB, scope entity.AccessScope) ([]string, error)
	DistinctMajilisCon(db *gorm.DB, scope entity.AccessScope) ([]string, error)
	UpdateContact(db *gorm.DB, id int64, update *entity.VoterContactUpdate) error
	UpsertPledge(db *gorm.DB, voterID int64, update *entity.PledgeUpdate) error
}
