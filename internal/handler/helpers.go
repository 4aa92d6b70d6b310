package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/my_errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondWithError(w, status, &dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func respondWithError(w http.ResponseWriter, status int, errResp *dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}

// respondServiceError maps sentinel business errors to HTTP statuses
// and stable error codes. Anything unrecognized is a storage failure.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrInvalidCategory),
		errors.Is(err, my_errors.ErrInvalidGroup),
		errors.Is(err, my_errors.ErrInvalidInput),
		errors.Is(err, my_errors.ErrEmptyField):
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	case errors.Is(err, my_errors.ErrTeamNotFound),
		errors.Is(err, my_errors.ErrVoterNotFound),
		errors.Is(err, my_errors.ErrJudgeNotFound),
		errors.Is(err, my_errors.ErrMemberNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, err.Error())
	case errors.Is(err, my_errors.ErrInvalidAuthCode),
		errors.Is(err, my_errors.ErrInvalidPassword),
		errors.Is(err, my_errors.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, dto.ErrCodeInvalidCredential, err.Error())
	case errors.Is(err, my_errors.ErrAlreadyVoted):
		respondError(w, http.StatusConflict, dto.ErrCodeAlreadyVoted, err.Error())
	case errors.Is(err, my_errors.ErrQuotaExceeded):
		respondError(w, http.StatusConflict, dto.ErrCodeQuotaExceeded, err.Error())
	case errors.Is(err, my_errors.ErrDuplicateTargetVote):
		respondError(w, http.StatusConflict, dto.ErrCodeDuplicateTarget, err.Error())
	case errors.Is(err, my_errors.ErrOwnTeamVote):
		respondError(w, http.StatusConflict, dto.ErrCodeOwnTeam, err.Error())
	case errors.Is(err, my_errors.ErrGroupMismatch):
		respondError(w, http.StatusForbidden, dto.ErrCodeGroupMismatch, err.Error())
	case errors.Is(err, my_errors.ErrJudgeAlreadyExists):
		respondError(w, http.StatusConflict, dto.ErrCodeJudgeExists, err.Error())
	default:
		slog.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, dto.ErrCodeStorage, "internal server error")
	}
}
