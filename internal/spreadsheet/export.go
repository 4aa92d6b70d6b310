package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
)

// BuildResultsWorkbook builds the results export: a "Results" sheet
// with one row per team and a "Rankings" sheet with the group-scoped
// top teams per category.
func BuildResultsWorkbook(results []domain.TeamResult, rankings []domain.GroupRanking) (*excelize.File, error) {
	f := excelize.NewFile()
	const resultsSheet = "Results"
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to name results sheet: %w", err)
	}

	headers := []string{
		"Group", "Team Name", "Leader", "Member 2", "Member 3", "Member 4", "Members",
		"Idea Votes", "Implementation Votes", "Idea Voters", "Implementation Voters", "Total Votes",
	}
	if err := setRow(f, resultsSheet, 1, headers); err != nil {
		return nil, err
	}

	for i, res := range results {
		voters := append(append([]string{}, res.IdeaVoters...), res.IdeaJudges...)
		implVoters := append(append([]string{}, res.ImplementationVoters...), res.ImplementationJudges...)
		values := []any{
			res.TeamGroup, res.TeamName, res.LeaderName, res.Member2Name, res.Member3Name, res.Member4Name,
			res.TotalMembers, res.IdeaVotes, res.ImplementationVotes,
			strings.Join(voters, ", "), strings.Join(implVoters, ", "),
			res.IdeaVotes + res.ImplementationVotes,
		}
		if err := setRowValues(f, resultsSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	widths := []float64{8, 20, 15, 15, 15, 15, 10, 12, 18, 30, 30, 12}
	if err := setColWidths(f, resultsSheet, widths); err != nil {
		return nil, err
	}

	if err := addRankingsSheet(f, rankings); err != nil {
		return nil, err
	}

	return f, nil
}

func addRankingsSheet(f *excelize.File, rankings []domain.GroupRanking) error {
	const sheet = "Rankings"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create rankings sheet: %w", err)
	}

	headers := []string{"Group / Category", "1st", "2nd", "3rd"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, ranking := range rankings {
		values := []any{fmt.Sprintf("Group %s - %s", ranking.Group, ranking.Category)}
		for _, entry := range ranking.Entries {
			values = append(values, fmt.Sprintf("%s (%d votes)", entry.TeamName, entry.Votes))
		}
		for len(values) < 4 {
			values = append(values, "")
		}
		if err := setRowValues(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	widths := []float64{25, 30, 30, 30}
	return setColWidths(f, sheet, widths)
}
