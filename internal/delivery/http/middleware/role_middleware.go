package middleware

import (
	"net/http"

	"voter-pledge-admin/internal/domain/entity"
	"voter-pledge-admin/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Roles are read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roles, ok := GetRolesFromContext(r.Context())
			if !ok {
				response.LoginRequired(w, "Role information not found", LoginURL)
				return
			}

			if !roles.HasAny(allowed...) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyRole rejects accounts that hold no recognised role at all.
func RequireAnyRole(next http.Handler) http.Handler {
	return RequireRole(entity.AllRoles...)(next)
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}
