package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/pkg/jwt"
	"voter-pledge-admin/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RolesKey     contextKey = "roles"
	TokenIDKey   contextKey = "token_id"
)

// LoginURL is where unauthenticated callers are sent.
const LoginURL = "/api/v1/auth/login"

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.LoginRequired(w, "Authorization header is required", LoginURL)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.LoginRequired(w, "Invalid authorization header format", LoginURL)
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.LoginRequired(w, "Invalid or expired token", LoginURL)
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.LoginRequired(w, "Invalid token type", LoginURL)
			return
		}

		// Check if token exists in Redis (not revoked)
		tokenKey := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.LoginRequired(w, "Token has been revoked", LoginURL)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, RolesKey, entity.NewRoleSet(claims.Roles))
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRolesFromContext extracts the caller's role set from context
func GetRolesFromContext(ctx context.Context) (entity.RoleSet, bool) {
	roles, ok := ctx.Value(RolesKey).(entity.RoleSet)
	return roles, ok
}

// GetPrincipalFromContext builds the caller identity used for voter scoping.
func GetPrincipalFromContext(ctx context.Context) (*entity.Principal, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return nil, false
	}
	roles, _ := GetRolesFromContext(ctx)
	return &entity.Principal{UserID: userID, Roles: roles}, true
}

// WithPrincipal stores an already authenticated identity in ctx.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, principal.UserID)
	return context.WithValue(ctx, RolesKey, principal.Roles)
}
