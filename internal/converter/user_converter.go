package converter

import (
	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/domain/entity"
)

const userTimestampLayout = "2006-01-02 15:04:05"

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Roles:     user.RoleSet().Keys(),
		CreatedAt: user.CreatedAt.Format(userTimestampLayout),
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}

// RoleOptions lists every assignable role in declaration order.
func RoleOptions() []dto.RoleOption {
	options := make([]dto.RoleOption, 0, len(entity.AllRoles))
	for _, role := range entity.AllRoles {
		options = append(options, dto.RoleOption{Key: role.String(), Label: role.Label()})
	}
	return options
}
