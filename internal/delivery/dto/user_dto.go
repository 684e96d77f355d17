package dto

import (
	"strings"

	"github.com/google/uuid"
)

// Request DTOs

type CreateUserRequest struct {
	Name                 string   `json:"name" validate:"required,max=255"`
	Email                string   `json:"email" validate:"required,email,max=255"`
	Password             string   `json:"password" validate:"required,min=8"`
	PasswordConfirmation string   `json:"password_confirmation" validate:"eqfield=Password"`
	Roles                []string `json:"roles" validate:"required,min=1,dive,required,role"`
}

// Normalize trims input and de-duplicates roles before validation.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Roles = normalizeRoleKeys(r.Roles)
}

// UpdateUserRequest leaves the password unchanged when it is blank.
type UpdateUserRequest struct {
	Name                 string   `json:"name" validate:"required,max=255"`
	Email                string   `json:"email" validate:"required,email,max=255"`
	Password             string   `json:"password" validate:"omitempty,min=8"`
	PasswordConfirmation string   `json:"password_confirmation" validate:"eqfield=Password"`
	Roles                []string `json:"roles" validate:"required,min=1,dive,required,role"`
}

func (r *UpdateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Roles = normalizeRoleKeys(r.Roles)
	if strings.TrimSpace(r.Password) == "" {
		r.Password = ""
		r.PasswordConfirmation = ""
	}
}

type UserListRequest struct {
	Search string `json:"search" validate:"max=100"`
	Page   int    `json:"page" validate:"gte=1"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt string    `json:"created_at"`
}

type RoleOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type UserFilters struct {
	Search string `json:"search"`
}

type UserListResponse struct {
	Users       []UserResponse `json:"users"`
	Filters     UserFilters    `json:"filters"`
	RoleOptions []RoleOption   `json:"role_options"`
	Page        int            `json:"-"`
	PerPage     int            `json:"-"`
	Total       int64          `json:"-"`
}

// normalizeRoleKeys trims keys and drops blanks and repeats, keeping order.
// Unknown keys are kept so validation can report them.
func normalizeRoleKeys(keys []string) []string {
	if keys == nil {
		return nil
	}
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
