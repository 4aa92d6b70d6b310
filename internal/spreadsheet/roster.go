// Package spreadsheet parses and builds the xlsx files the admin
// exchanges with the service: roster uploads, auth-code sheets and
// results exports.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
)

// ParseRoster reads a roster workbook. Expected columns, first sheet,
// one header row:
//
//	No. | leader | member2 | member3 | member4 | team name | members | group
//
// Rows without a leader name are skipped.
func ParseRoster(r io.Reader) ([]domain.RosterEntry, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	var entries []domain.RosterEntry
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		leader := cell(row, 1)
		if leader == "" {
			continue
		}
		entries = append(entries, domain.RosterEntry{
			TeamNumber:   cellInt(row, 0),
			LeaderName:   leader,
			Member2Name:  cell(row, 2),
			Member3Name:  cell(row, 3),
			Member4Name:  cell(row, 4),
			TeamName:     cell(row, 5),
			TotalMembers: cellInt(row, 6),
			TeamGroup:    strings.ToUpper(cell(row, 7)),
		})
	}

	return entries, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellInt(row []string, idx int) int {
	n, err := strconv.Atoi(cell(row, idx))
	if err != nil {
		return 0
	}
	return n
}
