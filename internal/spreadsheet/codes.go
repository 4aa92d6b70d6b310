package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
)

// ParseAuthCodes reads an auth-code workbook. Expected columns, first
// sheet, one header row:
//
//	team number | team name | member slot | ldap nickname | auth code
//
// Rows missing a team number, nickname or code are skipped.
func ParseAuthCodes(r io.Reader) ([]domain.AuthCodeEntry, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	var entries []domain.AuthCodeEntry
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		entry := domain.AuthCodeEntry{
			TeamNumber:   cellInt(row, 0),
			TeamName:     cell(row, 1),
			MemberSlot:   cell(row, 2),
			LdapNickname: cell(row, 3),
			AuthCode:     cell(row, 4),
		}
		if entry.TeamNumber == 0 || entry.LdapNickname == "" || entry.AuthCode == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// BuildAuthCodesWorkbook lays out one row per occupied member slot, so
// the sheet can be handed out and later re-imported via
// ParseAuthCodes.
func BuildAuthCodesWorkbook(teams []domain.Team) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Auth Codes"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Team Number", "Team Name", "Member Slot", "LDAP Nickname", "Auth Code"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}

	rowNum := 2
	for _, team := range teams {
		for _, slot := range team.MemberSlots() {
			values := []any{team.TeamNumber, team.TeamName, slot.Label, slot.Name, slot.Code}
			if err := setRowValues(f, sheet, rowNum, values); err != nil {
				return nil, err
			}
			rowNum++
		}
	}

	widths := []float64{12, 25, 12, 20, 12}
	if err := setColWidths(f, sheet, widths); err != nil {
		return nil, err
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	anyValues := make([]any, len(values))
	for i, v := range values {
		anyValues[i] = v
	}
	return setRowValues(f, sheet, row, anyValues)
}

func setRowValues(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cellName, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cellName, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cellName, err)
		}
	}
	return nil
}

func setColWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to compute column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}
