package repository

import (
	"voter-pledge-admin/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindPage(db *gorm.DB, filter *entity.UserFilter, page entity.Page) ([]entity.User, int64, error)
	EmailTaken(db *gorm.DB, email string, excludeID *uuid.UUID) (bool, error)
	Update(db *gorm.DB, user *entity.User) error
}
