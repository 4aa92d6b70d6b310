package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/mapper"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/request"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/response"
)

type JudgeService interface {
	GetAllJudges(ctx context.Context) ([]domain.Judge, error)
	CreateJudge(ctx context.Context, name, group string) (*domain.Judge, error)
	DeleteJudge(ctx context.Context, id int64) (int64, error)
	ResetJudgeVotes(ctx context.Context, id int64) (int64, error)
}

type JudgeHandler struct {
	service   JudgeService
	validator *validator.Validate
}

func NewJudgeHandler(service JudgeService, validator *validator.Validate) *JudgeHandler {
	return &JudgeHandler{
		service:   service,
		validator: validator,
	}
}

// ListJudges godoc
// @Summary List judges (Admin only)
// @Description Get all registered judges with their vote usage
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.JudgesResponse "Judges retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/judges [get]
func (h *JudgeHandler) ListJudges(w http.ResponseWriter, r *http.Request) {
	judges, err := h.service.GetAllJudges(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	judgeDTOs := mapper.MapDomainJudgesToDTO(judges)
	resp := response.JudgesResponse{
		Judges: judgeDTOs,
		Count:  len(judgeDTOs),
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateJudge godoc
// @Summary Register a judge (Admin only)
// @Description Add a judge to the registry. Names are unique, case-insensitively.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateJudgeRequest true "Judge registration request"
// @Success 201 {object} response.JudgeResponse "Judge registered"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Judge already exists"
// @Router /admin/judges [post]
func (h *JudgeHandler) CreateJudge(w http.ResponseWriter, r *http.Request) {
	var req request.CreateJudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	judge, err := h.service.CreateJudge(r.Context(), req.Name, req.JudgeGroup)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.JudgeResponse{
		Judge:   mapper.MapDomainJudgeToDTO(judge),
		Message: "judge registered",
	}

	respondJSON(w, http.StatusCreated, resp)
}

// DeleteJudge godoc
// @Summary Delete a judge (Admin only)
// @Description Remove a judge and every vote it cast
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Judge ID"
// @Success 200 {object} response.ResetVotesResponse "Judge deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Judge not found"
// @Router /admin/judges/{id} [delete]
func (h *JudgeHandler) DeleteJudge(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid id")
		return
	}

	removed, err := h.service.DeleteJudge(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.ResetVotesResponse{
		Message:      "judge deleted",
		RemovedVotes: removed,
	}

	respondJSON(w, http.StatusOK, resp)
}

// ResetJudgeVotes godoc
// @Summary Reset a judge's votes (Admin only)
// @Description Remove the judge's votes and zero its quota counters, keeping the judge registered
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Judge ID"
// @Success 200 {object} response.ResetVotesResponse "Votes reset"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Judge not found"
// @Router /admin/judges/{id}/reset-votes [post]
func (h *JudgeHandler) ResetJudgeVotes(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid id")
		return
	}

	removed, err := h.service.ResetJudgeVotes(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.ResetVotesResponse{
		Message:      "votes reset",
		RemovedVotes: removed,
	}

	respondJSON(w, http.StatusOK, resp)
}
