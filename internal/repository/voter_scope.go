package repository

import (
	"voter-pledge-admin/internal/domain/entity"

	"gorm.io/gorm"
)

// VoterScope restricts a voter_records query to the rows an access scope
// permits. Every voter read path goes through it.
func VoterScope(scope entity.AccessScope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.All {
			return db
		}
		if scope.DeniesAll() {
			return db.Where("1 = 0")
		}
		return db.Where("voter_records.dhaairaa IN ?", scope.DhaairaaCodes)
	}
}
