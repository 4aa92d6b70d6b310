package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"
)

type AuthService interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

type contextKey string

const RoleKey contextKey = "role"

// AuthMiddleware checks the Bearer token on admin routes.
func AuthMiddleware(authService AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeInvalidCredential,
						Message: "missing authorization header",
					},
				})
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeInvalidCredential,
						Message: "invalid authorization header format",
					},
				})
				return
			}

			role, err := authService.ValidateToken(r.Context(), parts[1])
			if err != nil {
				respondError(w, http.StatusUnauthorized, dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeInvalidCredential,
						Message: "invalid or expired token",
					},
				})
				return
			}

			ctx := context.WithValue(r.Context(), RoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondError(w http.ResponseWriter, status int, errResp dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}
