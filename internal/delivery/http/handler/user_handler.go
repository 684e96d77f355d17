package handler

import (
	"encoding/json"
	"net/http"

	"voter-pledge-admin/internal/converter"
	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/usecase"
	"voter-pledge-admin/pkg/response"
	"voter-pledge-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := dto.UserListRequest{
		Search: r.URL.Query().Get("search"),
		Page:   queryPage(r),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	users, err := h.userUsecase.List(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	total := users.Total
	totalPages := int((total + int64(users.PerPage) - 1) / int64(users.PerPage))
	response.SuccessWithMeta(w, http.StatusOK, "Users retrieved successfully", users, &response.Meta{
		Page:       users.Page,
		Limit:      users.PerPage,
		Total:      &total,
		TotalPages: &totalPages,
		HasMore:    users.Page < totalPages,
	})
}

func (h *UserHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Roles retrieved successfully", converter.RoleOptions())
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.Normalize()

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.ValidationError(w, map[string]string{"email": "email has already been taken"})
		default:
			response.InternalServerError(w, "Failed to create user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created.", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.NotFound(w, "User not found")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.Normalize()

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Update(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrEmailAlreadyExists:
			response.ValidationError(w, map[string]string{"email": "email has already been taken"})
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated.", user)
}
