package handler

import (
	"context"
	"net/http"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/mapper"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/response"
)

type VoterService interface {
	GetAllVoters(ctx context.Context) ([]domain.Voter, error)
	ResetVoterVotes(ctx context.Context, id int64) (int64, error)
}

type VoterHandler struct {
	service VoterService
}

func NewVoterHandler(service VoterService) *VoterHandler {
	return &VoterHandler{service: service}
}

// ListVoters godoc
// @Summary List voters (Admin only)
// @Description Get all authenticated voters with their per-category flags
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.VotersResponse "Voters retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/voters [get]
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.service.GetAllVoters(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	voterDTOs := mapper.MapDomainVotersToDTO(voters)
	resp := response.VotersResponse{
		Voters: voterDTOs,
		Count:  len(voterDTOs),
	}

	respondJSON(w, http.StatusOK, resp)
}

// ResetVoterVotes godoc
// @Summary Reset a voter (Admin only)
// @Description Remove the voter's votes and delete the voter record, so the member can authenticate again
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Voter ID"
// @Success 200 {object} response.ResetVotesResponse "Voter reset"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Voter not found"
// @Router /admin/voters/{id}/reset-votes [post]
func (h *VoterHandler) ResetVoterVotes(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid id")
		return
	}

	removed, err := h.service.ResetVoterVotes(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.ResetVotesResponse{
		Message:      "voter reset",
		RemovedVotes: removed,
	}

	respondJSON(w, http.StatusOK, resp)
}
