package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
)

func TestParseRoster(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"No.", "Leader", "Member 2", "Member 3", "Member 4", "Team Name", "Members", "Group"},
		{1, "alice", "bob", "", "", "Alpha", 2, "a"},
		{2, "", "", "", "", "Ghost", 1, "A"}, // no leader, skipped
		{3, "carol", "", "", "", "Gamma", 1, "B"},
	}
	for i, row := range rows {
		for j, v := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cellName, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	entries, err := ParseRoster(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].TeamNumber)
	assert.Equal(t, "alice", entries[0].LeaderName)
	assert.Equal(t, "bob", entries[0].Member2Name)
	assert.Equal(t, "Alpha", entries[0].TeamName)
	assert.Equal(t, 2, entries[0].TotalMembers)
	assert.Equal(t, "A", entries[0].TeamGroup) // group is uppercased

	assert.Equal(t, "carol", entries[1].LeaderName)
	assert.Equal(t, "B", entries[1].TeamGroup)
}

func TestParseRoster_NotAWorkbook(t *testing.T) {
	_, err := ParseRoster(bytes.NewBufferString("definitely not xlsx"))
	assert.Error(t, err)
}

// Exported auth-code sheets must re-import cleanly.
func TestAuthCodesRoundTrip(t *testing.T) {
	teams := []domain.Team{
		{
			TeamNumber:      1,
			TeamName:        "Alpha",
			LeaderName:      "alice",
			Member2Name:     "bob",
			LeaderAuthCode:  "111111",
			Member2AuthCode: "222222",
			TeamGroup:       domain.GroupA,
		},
		{
			TeamNumber:     2,
			TeamName:       "Beta",
			LeaderName:     "carol",
			LeaderAuthCode: "333333",
			TeamGroup:      domain.GroupB,
		},
	}

	workbook, err := BuildAuthCodesWorkbook(teams)
	require.NoError(t, err)
	defer workbook.Close()

	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf))

	entries, err := ParseAuthCodes(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, domain.AuthCodeEntry{
		TeamNumber: 1, TeamName: "Alpha", MemberSlot: domain.SlotLeader,
		LdapNickname: "alice", AuthCode: "111111",
	}, entries[0])
	assert.Equal(t, domain.SlotMember2, entries[1].MemberSlot)
	assert.Equal(t, "carol", entries[2].LdapNickname)
}

func TestBuildResultsWorkbook(t *testing.T) {
	results := []domain.TeamResult{
		{
			Team:                 domain.Team{TeamNumber: 1, TeamName: "Alpha", LeaderName: "alice", TeamGroup: domain.GroupA, TotalMembers: 2},
			IdeaVotes:            2,
			ImplementationVotes:  1,
			IdeaVoters:           []string{"bob"},
			IdeaJudges:           []string{"Grace"},
			ImplementationVoters: []string{"bob"},
		},
	}
	rankings := []domain.GroupRanking{
		{
			Group:    domain.GroupA,
			Category: domain.CategoryIdea,
			Entries:  []domain.RankingEntry{{TeamName: "Alpha", TeamNumber: 1, Votes: 2}},
		},
	}

	workbook, err := BuildResultsWorkbook(results, rankings)
	require.NoError(t, err)
	defer workbook.Close()

	assert.ElementsMatch(t, []string{"Results", "Rankings"}, workbook.GetSheetList())

	name, err := workbook.GetCellValue("Results", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", name)

	total, err := workbook.GetCellValue("Results", "L2")
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	voters, err := workbook.GetCellValue("Results", "J2")
	require.NoError(t, err)
	assert.Equal(t, "bob, Grace", voters)

	first, err := workbook.GetCellValue("Rankings", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alpha (2 votes)", first)
}
