package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"voter-pledge-admin/internal/delivery/dto"
	"voter-pledge-admin/internal/delivery/http/middleware"
	"voter-pledge-admin/internal/usecase"
	"voter-pledge-admin/pkg/response"
	"voter-pledge-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type VoterHandler struct {
	voterUsecase usecase.VoterUsecase
	validator    *validator.CustomValidator
}

func NewVoterHandler(voterUsecase usecase.VoterUsecase, validator *validator.CustomValidator) *VoterHandler {
	return &VoterHandler{
		voterUsecase: voterUsecase,
		validator:    validator,
	}
}

// ListVoters returns one page of voters visible to the caller.
// @Summary List voters
// @Tags Voters
// @Security BearerAuth
// @Param search query string false "Search id card, name, address or mobile"
// @Param dhaairaa query string false "Exact dhaairaa"
// @Param majilis_con query string false "Exact majilis constituency"
// @Param page query int false "Page number"
// @Param selected query int false "Voter to show in detail"
// @Router /voters [get]
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.LoginRequired(w, "", middleware.LoginURL)
		return
	}

	query := r.URL.Query()
	req := dto.VoterListRequest{
		Search:     query.Get("search"),
		Dhaairaa:   query.Get("dhaairaa"),
		MajilisCon: query.Get("majilis_con"),
		Page:       queryPage(r),
		Selected:   queryInt64(r, "selected"),
	}
	req.Normalize()

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	voters, err := h.voterUsecase.List(r.Context(), principal, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to list voters")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Voters retrieved successfully", voters, &response.Meta{
		Page:    voters.Page,
		Limit:   voters.PerPage,
		HasMore: voters.HasMore,
	})
}

// UpdateVoter saves contact fields and pledges for one voter.
// @Summary Update voter
// @Tags Voters
// @Security BearerAuth
// @Param request body dto.UpdateVoterRequest true "Update Voter Request"
// @Router /voters/{id} [patch]
func (h *VoterHandler) UpdateVoter(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.LoginRequired(w, "", middleware.LoginURL)
		return
	}

	vars := mux.Vars(r)
	voterID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.NotFound(w, "Voter not found")
		return
	}

	var req dto.UpdateVoterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.Normalize()

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	voter, err := h.voterUsecase.Update(r.Context(), principal, voterID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVoterNotFound:
			response.NotFound(w, "Voter not found")
		case usecase.ErrVoterForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to update voter")
		}
		return
	}

	response.Success(w, http.StatusOK, "Voter updated.", voter)
}
