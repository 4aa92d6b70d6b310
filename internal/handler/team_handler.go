package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/mapper"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/request"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/response"
)

type TeamService interface {
	GetTeams(ctx context.Context, group string) ([]domain.Team, error)
	GetAllTeams(ctx context.Context) ([]domain.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	ImportRoster(ctx context.Context, entries []domain.RosterEntry) (*domain.RosterImportSummary, error)
}

type TeamHandler struct {
	service   TeamService
	validator *validator.Validate
}

func NewTeamHandler(service TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator,
	}
}

// ListTeams godoc
// @Summary List teams
// @Description Get teams in canonical order, optionally filtered by group. Auth codes are never included.
// @Tags Teams
// @Produce json
// @Param group query string false "Group filter (A, B or C)"
// @Success 200 {object} response.TeamsResponse "Teams retrieved"
// @Failure 400 {object} dto.ErrorResponse "Unknown group"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")

	teams, err := h.service.GetTeams(r.Context(), group)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	teamDTOs := mapper.MapDomainTeamsToDTO(teams)
	resp := response.TeamsResponse{
		Teams: teamDTOs,
		Count: len(teamDTOs),
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListAllTeams godoc
// @Summary List all teams with auth codes (Admin only)
// @Description Get the full roster including per-slot auth codes
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.AdminTeamsResponse "Teams retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/teams [get]
func (h *TeamHandler) ListAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.GetAllTeams(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	teamDTOs := mapper.MapDomainTeamsToAdminDTO(teams)
	resp := response.AdminTeamsResponse{
		Teams: teamDTOs,
		Count: len(teamDTOs),
	}

	respondJSON(w, http.StatusOK, resp)
}

// SaveTeams godoc
// @Summary Replace the roster from JSON (Admin only)
// @Description Replace all teams with the given listing. Voters, judges and votes are wiped with the old roster.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.SaveTeamsRequest true "Full roster"
// @Success 200 {object} response.RosterImportResponse "Roster replaced"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/teams/save [post]
func (h *TeamHandler) SaveTeams(w http.ResponseWriter, r *http.Request) {
	var req request.SaveTeamsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	entries := mapper.MapSaveTeamsRequestToDomain(&req)

	summary, err := h.service.ImportRoster(r.Context(), entries)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.RosterImportResponse{
		Message:       "roster replaced",
		TeamsImported: summary.TeamsImported,
	}

	respondJSON(w, http.StatusOK, resp)
}

// DeleteTeam godoc
// @Summary Delete a team (Admin only)
// @Description Remove a single team by id
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} response.DeleteTeamResponse "Team deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /admin/teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid id")
		return
	}

	if err := h.service.DeleteTeam(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.DeleteTeamResponse{Message: "team deleted"})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
