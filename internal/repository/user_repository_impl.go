package repository

import (
	"errors"
	"strings"

	"voter-pledge-admin/internal/domain/entity"
	domainRepo "voter-pledge-admin/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindPage returns users ordered by name together with the total match count.
func (r *userRepository) FindPage(db *gorm.DB, filter *entity.UserFilter, page entity.Page) ([]entity.User, int64, error) {
	filtered := func() *gorm.DB {
		query := db.Model(&entity.User{})
		if filter != nil && filter.Search != "" {
			pattern := "%" + strings.ToLower(filter.Search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := []entity.User{}
	err := filtered().
		Order("name ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// EmailTaken reports whether another account already uses the email.
func (r *userRepository) EmailTaken(db *gorm.DB, email string, excludeID *uuid.UUID) (bool, error) {
	query := db.Model(&entity.User{}).Where("LOWER(email) = ?", strings.ToLower(email))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}
