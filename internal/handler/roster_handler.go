package handler

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/response"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// 10 MiB. Uploaded workbooks are small; anything bigger is a mistake.
const maxUploadSize = 10 << 20

type RosterService interface {
	GetAllTeams(ctx context.Context) ([]domain.Team, error)
	ImportRoster(ctx context.Context, entries []domain.RosterEntry) (*domain.RosterImportSummary, error)
	ImportAuthCodes(ctx context.Context, entries []domain.AuthCodeEntry) (*domain.AuthCodeImportSummary, error)
}

type RosterHandler struct {
	service RosterService
}

func NewRosterHandler(service RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// UploadRoster godoc
// @Summary Upload a roster spreadsheet (Admin only)
// @Description Replace all teams from an xlsx file. Voters, judges and votes are wiped with the old roster; new auth codes are generated.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Roster xlsx file"
// @Success 200 {object} response.RosterImportResponse "Roster replaced"
// @Failure 400 {object} dto.ErrorResponse "Unreadable file or empty roster"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/teams/upload [post]
func (h *RosterHandler) UploadRoster(w http.ResponseWriter, r *http.Request) {
	file, ok := formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	entries, err := spreadsheet.ParseRoster(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "failed to parse roster: "+err.Error())
		return
	}

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

// UploadAuthCodes godoc
// @Summary Upload an auth-code spreadsheet (Admin only)
// @Description Overwrite per-slot auth codes for rows matching existing teams. Unmatched rows are reported, not fatal.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Auth codes xlsx file"
// @Success 200 {object} response.AuthCodeImportResponse "Codes updated"
// @Failure 400 {object} dto.ErrorResponse "Unreadable file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /admin/auth-codes/upload [post]
func (h *RosterHandler) UploadAuthCodes(w http.ResponseWriter, r *http.Request) {
	file, ok := formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	entries, err := spreadsheet.ParseAuthCodes(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "failed to parse auth codes: "+err.Error())
		return
	}

	summary, err := h.service.ImportAuthCodes(r.Context(), entries)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := response.AuthCodeImportResponse{
		Message:   "auth codes updated",
		Updated:   summary.Updated,
		Unmatched: summary.Unmatched,
	}

	respondJSON(w, http.StatusOK, resp)
}

// ExportAuthCodes godoc
// @Summary Download the auth-code spreadsheet (Admin only)
// @Description One row per occupied member slot; the same layout UploadAuthCodes accepts
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Auth codes workbook"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/auth-codes/export [get]
func (h *RosterHandler) ExportAuthCodes(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.GetAllTeams(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	workbook, err := spreadsheet.BuildAuthCodesWorkbook(teams)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	defer workbook.Close()

	serveWorkbook(w, workbook, "auth_codes.xlsx")
}

func formFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid multipart form")
		return nil, false
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "file field is required")
		return nil, false
	}
	return f, true
}

func serveWorkbook(w http.ResponseWriter, workbook *excelize.File, filename string) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := workbook.Write(w); err != nil {
		slog.Warn("failed to stream workbook", "error", err)
	}
}
