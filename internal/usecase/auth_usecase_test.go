package usecase

import (
	"context"
	"testing"
	"time"

	"voter-pledge-admin/config"
	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/internal/repository"
	"voter-pledge-admin/internal/testutil"
	"voter-pledge-admin/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authFixture struct {
	db         *gorm.DB
	mr         *miniredis.Miniredis
	jwtService *jwt.JWTService
	usecase    AuthUsecase
	user       *entity.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	mr, client := testutil.SetupTestRedis(t)
	log, _ := testutil.NewTestLogger()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("password-1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		Name:     "Dhaaira One",
		Email:    "d1@example.com",
		Password: string(hash),
		Roles:    entity.RoleSet{entity.RoleDhaaira1},
	}
	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.Create(db, user))

	return &authFixture{
		db:         db,
		mr:         mr,
		jwtService: jwtService,
		usecase:    NewAuthUsecase(db, log, userRepo, jwtService, client),
		user:       user,
	}
}

func TestAuthUsecaseLoginIssuesTokensWithRoles(t *testing.T) {
	f := newAuthFixture(t)

	tokens, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "D1@example.com", Password: "password-1"})
	require.NoError(t, err)
	assert.EqualValues(t, 900, tokens.ExpiresIn)

	claims, err := f.jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, claims.UserID)
	assert.Equal(t, []string{"dhaaira-1"}, claims.Roles)
	assert.True(t, f.mr.Exists(accessTokenKey(f.user.ID, claims.TokenID)))
}

func TestAuthUsecaseLoginRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "d1@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "password-1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecaseRefreshReloadsRoles(t *testing.T) {
	f := newAuthFixture(t)
	tokens, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "d1@example.com", Password: "password-1"})
	require.NoError(t, err)

	f.user.Roles = entity.RoleSet{entity.RoleDhaaira2}
	require.NoError(t, f.db.Save(f.user).Error)

	refreshed, err := f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)

	claims, err := f.jwtService.ValidateToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, []string{"dhaaira-2"}, claims.Roles)

	_, err = f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: refreshed.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUsecaseLogoutAndRevokeAll(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	first, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "d1@example.com", Password: "password-1"})
	require.NoError(t, err)
	second, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "d1@example.com", Password: "password-1"})
	require.NoError(t, err)

	firstAccess, err := f.jwtService.ValidateToken(first.AccessToken)
	require.NoError(t, err)
	firstRefresh, err := f.jwtService.ValidateToken(first.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, f.usecase.Logout(ctx, f.user.ID, firstAccess.TokenID, firstRefresh.TokenID))
	assert.False(t, f.mr.Exists(accessTokenKey(f.user.ID, firstAccess.TokenID)))
	assert.False(t, f.mr.Exists(refreshTokenKey(f.user.ID, firstRefresh.TokenID)))

	secondAccess, err := f.jwtService.ValidateToken(second.AccessToken)
	require.NoError(t, err)
	assert.True(t, f.mr.Exists(accessTokenKey(f.user.ID, secondAccess.TokenID)))

	require.NoError(t, f.usecase.RevokeAllUserTokens(ctx, f.user.ID))
	assert.Empty(t, f.mr.Keys())
}

func TestAuthUsecaseGetCurrentUser(t *testing.T) {
	f := newAuthFixture(t)

	me, err := f.usecase.GetCurrentUser(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "d1@example.com", me.Email)
	assert.Equal(t, []string{"dhaaira-1"}, me.Roles)
}
