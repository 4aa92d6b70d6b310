package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/request"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/response"
)

type VoteService interface {
	SubmitVoterVote(ctx context.Context, voterID, teamID int64, category string) (int64, error)
	SubmitJudgeVote(ctx context.Context, judgeID, teamID int64, category string) (int64, error)
}

type VoteHandler struct {
	service   VoteService
	validator *validator.Validate
}

func NewVoteHandler(service VoteService, validator *validator.Validate) *VoteHandler {
	return &VoteHandler{
		service:   service,
		validator: validator,
	}
}

// SubmitVoterVote godoc
// @Summary Submit a voter vote
// @Description Record a voter's single per-category vote for a team
// @Tags Voting
// @Accept json
// @Produce json
// @Param request body request.VoterVoteRequest true "Voter vote request"
// @Success 201 {object} response.VoteResponse "Vote recorded"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Target team is in another group"
// @Failure 404 {object} dto.ErrorResponse "Voter or team not found"
// @Failure 409 {object} dto.ErrorResponse "Already voted or own team"
// @Router /vote/submit [post]
func (h *VoteHandler) SubmitVoterVote(w http.ResponseWriter, r *http.Request) {
	var req request.VoterVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	voteID, err := h.service.SubmitVoterVote(r.Context(), req.VoterID, req.TeamID, req.VoteType)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.VoteResponse{
		Message:  "vote recorded",
		VoteType: req.VoteType,
		VoteID:   voteID,
	}

	respondJSON(w, http.StatusCreated, resp)
}

// SubmitJudgeVote godoc
// @Summary Submit a judge vote
// @Description Record one of a judge's two per-category votes for a team
// @Tags Voting
// @Accept json
// @Produce json
// @Param request body request.JudgeVoteRequest true "Judge vote request"
// @Success 201 {object} response.VoteResponse "Vote recorded"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Target team is in another group"
// @Failure 404 {object} dto.ErrorResponse "Judge or team not found"
// @Failure 409 {object} dto.ErrorResponse "Quota exceeded or duplicate target"
// @Router /judge/submit [post]
func (h *VoteHandler) SubmitJudgeVote(w http.ResponseWriter, r *http.Request) {
	var req request.JudgeVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	voteID, err := h.service.SubmitJudgeVote(r.Context(), req.JudgeID, req.TeamID, req.VoteType)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.VoteResponse{
		Message:  "vote recorded",
		VoteType: req.VoteType,
		VoteID:   voteID,
	}

	respondJSON(w, http.StatusCreated, resp)
}
