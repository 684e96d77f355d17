package handler

import (
	"net/http"

	"voter-pledge-admin/internal/delivery/http/middleware"
	"voter-pledge-admin/internal/usecase"
	"voter-pledge-admin/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// GetStats returns the dashboard statistics for the caller's scope.
// @Summary Voter statistics
// @Tags Stats
// @Security BearerAuth
// @Router /stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		response.LoginRequired(w, "", middleware.LoginURL)
		return
	}

	stats, err := h.statsUsecase.Get(r.Context(), principal)
	if err != nil {
		response.InternalServerError(w, "Failed to load statistics")
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}
