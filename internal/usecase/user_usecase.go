package usecase

import (
	"context"
	"errors"
	"strings"

	"voter-pledge-admin/config"
	"voter-pledge-admin/internal/converter"
	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type UserUsecase interface {
	List(ctx context.Context, req *dto.UserListRequest) (*dto.UserListResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

// TokenRevoker is the part of AuthUsecase the user usecase depends on.
type TokenRevoker interface {
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	revoker  TokenRevoker
	cfg      config.UsersConfig
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	revoker TokenRevoker,
	cfg config.UsersConfig,
) UserUsecase {
	if cfg.PageSize < 1 {
		cfg.PageSize = 15
	}
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		revoker:  revoker,
		cfg:      cfg,
	}
}

func (u *userUsecase) List(ctx context.Context, req *dto.UserListRequest) (*dto.UserListResponse, error) {
	search := strings.TrimSpace(req.Search)
	page := entity.Page{Number: req.Page, Size: u.cfg.PageSize}
	if page.Number < 1 {
		page.Number = 1
	}

	users, total, err := u.userRepo.FindPage(u.db.WithContext(ctx), &entity.UserFilter{Search: search}, page)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users:       converter.UsersToResponses(users),
		Filters:     dto.UserFilters{Search: search},
		RoleOptions: converter.RoleOptions(),
		Page:        page.Number,
		PerPage:     page.Size,
		Total:       total,
	}, nil
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	taken, err := u.userRepo.EmailTaken(tx, req.Email, nil)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Roles:    entity.NewRoleSet(req.Roles),
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"user_id": user.ID, "roles": user.Roles.Keys()}).Info("User created")
	return converter.UserToResponse(user), nil
}

// Update saves name, email and roles. A blank password keeps the current one.
// Existing tokens are revoked when email, password or roles change.
func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	taken, err := u.userRepo.EmailTaken(tx, req.Email, &user.ID)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	roles := entity.NewRoleSet(req.Roles)
	credentialsChanged := !strings.EqualFold(user.Email, req.Email) ||
		strings.Join(user.RoleSet().Keys(), ",") != strings.Join(roles.Keys(), ",")

	user.Name = req.Name
	user.Email = req.Email
	user.Roles = roles

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
		credentialsChanged = true
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if credentialsChanged && u.revoker != nil {
		if err := u.revoker.RevokeAllUserTokens(ctx, user.ID); err != nil {
			u.log.Warnf("Failed to revoke tokens for user %s: %+v", user.ID, err)
		}
	}

	return converter.UserToResponse(user), nil
}
