package handler

import (
	"context"
	"net/http"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/mapper"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/response"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/spreadsheet"
)

type ResultsService interface {
	GetResults(ctx context.Context) ([]domain.TeamResult, error)
	GetRankings(ctx context.Context) ([]domain.GroupRanking, error)
}

type ResultsHandler struct {
	service ResultsService
}

func NewResultsHandler(service ResultsService) *ResultsHandler {
	return &ResultsHandler{service: service}
}

// GetResults godoc
// @Summary Get vote results
// @Description One row per team in canonical order with per-category counts and caster names
// @Tags Results
// @Produce json
// @Success 200 {object} response.ResultsResponse "Results retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [get]
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.GetResults(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.ResultsResponse{
		Results: mapper.MapDomainResultsToDTO(results),
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetRankings godoc
// @Summary Get group rankings
// @Description Top teams per group and category, votes descending
// @Tags Results
// @Produce json
// @Success 200 {object} response.RankingsResponse "Rankings retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/rankings [get]
func (h *ResultsHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.service.GetRankings(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.RankingsResponse{
		Rankings: mapper.MapDomainRankingsToDTO(rankings),
	}

	respondJSON(w, http.StatusOK, resp)
}

// ExportResults godoc
// @Summary Download the results spreadsheet (Admin only)
// @Description Results and rankings as a two-sheet xlsx workbook
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Results workbook"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/export [get]
func (h *ResultsHandler) ExportResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.GetResults(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	rankings, err := h.service.GetRankings(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	workbook, err := spreadsheet.BuildResultsWorkbook(results, rankings)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	defer workbook.Close()

	serveWorkbook(w, workbook, "results.xlsx")
}
