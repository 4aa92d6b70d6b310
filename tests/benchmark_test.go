package tests

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/repository"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/service"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func BenchmarkGetResults(b *testing.B) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		teamsPerGroup int
		votersPerTeam int
	}{
		{"Small_5teams_2voters", 5, 2},
		{"Medium_20teams_4voters", 20, 4},
		{"Large_50teams_4voters", 50, 4},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			db := openBenchDB(b)
			teamRepo := repository.NewTeamRepository(db)
			voterRepo := repository.NewVoterRepository(db)
			judgeRepo := repository.NewJudgeRepository(db)
			voteRepo := repository.NewVoteRepository(db)

			voteService := service.NewVoteService(voteRepo, voterRepo, judgeRepo, teamRepo)
			resultsService := service.NewResultsService(teamRepo, voteRepo)

			seedVotes(b, teamRepo, voterRepo, voteService, tc.teamsPerGroup, tc.votersPerTeam)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := resultsService.GetResults(ctx)
				require.NoError(b, err)
			}
		})
	}
}

func openBenchDB(b *testing.B) *sql.DB {
	b.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(b, err)
	db.SetMaxOpenConns(1)
	require.NoError(b, repository.CreateSchema(db))

	b.Cleanup(func() { db.Close() })
	return db
}

// seedVotes builds two groups of teams and has every member vote for
// the next team in its group.
func seedVotes(b *testing.B, teamRepo *repository.TeamRepository, voterRepo *repository.VoterRepository, voteService *service.VoteService, teamsPerGroup, votersPerTeam int) {
	b.Helper()
	ctx := context.Background()

	for _, group := range []string{domain.GroupA, domain.GroupB} {
		teams := make([]*domain.Team, teamsPerGroup)
		for i := 0; i < teamsPerGroup; i++ {
			team := &domain.Team{
				TeamNumber:   i + 1,
				TeamName:     fmt.Sprintf("Team %s%d", group, i+1),
				LeaderName:   fmt.Sprintf("leader-%s%d", group, i+1),
				TotalMembers: votersPerTeam,
				TeamGroup:    group,
			}
			id, err := teamRepo.CreateTeam(ctx, team)
			require.NoError(b, err)
			team.ID = id
			teams[i] = team
		}

		for i, team := range teams {
			target := teams[(i+1)%len(teams)]
			for v := 0; v < votersPerTeam; v++ {
				voter := &domain.Voter{
					LdapNickname: fmt.Sprintf("voter-%s%d-%d", group, i+1, v),
					TeamID:       team.ID,
					VoterGroup:   group,
				}
				voterID, err := voterRepo.CreateVoter(ctx, voter)
				require.NoError(b, err)

				_, err = voteService.SubmitVoterVote(ctx, voterID, target.ID, domain.CategoryIdea)
				require.NoError(b, err)
			}
		}
	}
}
