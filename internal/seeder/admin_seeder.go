package seeder

import (
	"context"
	"errors"
	"strings"

	"voter-pledge-admin/config"
	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrAdminCredentialsMissing = errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required")

// SeedAdmin creates the administrator account or resets an existing one with
// the same email to the configured name, password and the admin role.
func SeedAdmin(ctx context.Context, db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, cfg config.AdminConfig) (*entity.User, error) {
	email := strings.TrimSpace(cfg.Email)
	if email == "" || cfg.Password == "" {
		return nil, ErrAdminCredentialsMissing
	}

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "Administrator"
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := userRepo.FindByEmail(tx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			Name:     name,
			Email:    email,
			Password: string(hashedPassword),
			Roles:    entity.RoleSet{entity.RoleAdmin},
		}
		if err := userRepo.Create(tx, user); err != nil {
			return nil, err
		}
		log.WithField("email", email).Info("Admin user created")
	} else {
		user.Name = name
		user.Password = string(hashedPassword)
		user.Roles = entity.RoleSet{entity.RoleAdmin}
		if err := userRepo.Update(tx, user); err != nil {
			return nil, err
		}
		log.WithField("email", email).Info("Admin user updated")
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return user, nil
}
