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

type AuthService interface {
	AuthenticateVoter(ctx context.Context, nickname, authCode string) (*domain.Voter, error)
	AuthenticateJudge(ctx context.Context, name string) (*domain.Judge, error)
	AdminLogin(ctx context.Context, password string) (string, error)
}

type AuthHandler struct {
	service   AuthService
	validator *validator.Validate
}

func NewAuthHandler(service AuthService, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator,
	}
}

// AuthenticateVoter godoc
// @Summary Authenticate a voter
// @Description Resolve an LDAP nickname and auth code to a voter record
// @Tags Voting
// @Accept json
// @Produce json
// @Param request body request.VoterAuthRequest true "Voter authentication request"
// @Success 200 {object} response.VoterAuthResponse "Voter authenticated"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid auth code"
// @Failure 404 {object} dto.ErrorResponse "Member not found in roster"
// @Router /vote/authenticate [post]
func (h *AuthHandler) AuthenticateVoter(w http.ResponseWriter, r *http.Request) {
	var req request.VoterAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	voter, err := h.service.AuthenticateVoter(r.Context(), req.LdapNickname, req.AuthCode)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.VoterAuthResponse{
		Voter:   mapper.MapDomainVoterToDTO(voter),
		Message: "authenticated",
	}

	respondJSON(w, http.StatusOK, resp)
}

// AuthenticateJudge godoc
// @Summary Authenticate a judge
// @Description Resolve a judge by name against the admin-managed registry
// @Tags Voting
// @Accept json
// @Produce json
// @Param request body request.JudgeAuthRequest true "Judge authentication request"
// @Success 200 {object} response.JudgeAuthResponse "Judge authenticated"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Judge not registered"
// @Router /judge/authenticate [post]
func (h *AuthHandler) AuthenticateJudge(w http.ResponseWriter, r *http.Request) {
	var req request.JudgeAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	judge, err := h.service.AuthenticateJudge(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.JudgeAuthResponse{
		Judge: mapper.MapDomainJudgeToDTO(judge),
	}

	respondJSON(w, http.StatusOK, resp)
}

// AdminLogin godoc
// @Summary Admin login
// @Description Exchange the admin password for a bearer token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request.AdminLoginRequest true "Admin login request"
// @Success 200 {object} response.AdminLoginResponse "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid password"
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	token, err := h.service.AdminLogin(r.Context(), req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.AdminLoginResponse{Token: token})
}
