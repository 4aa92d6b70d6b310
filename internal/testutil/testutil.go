// Package testutil opens throwaway in-memory databases for tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/repository"
)

// NewTestDB opens a fresh in-memory database with the schema applied.
// The connection pool is capped at one: an in-memory sqlite database
// vanishes when its last connection closes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	require.NoError(t, repository.CreateSchema(db))

	t.Cleanup(func() { db.Close() })
	return db
}

// SeedTeam inserts a four-member team with predictable names and auth
// codes: the leader is "<name> Leader" with code "111111", member2 is
// "<name> Member2" with "222222", and so on.
func SeedTeam(t *testing.T, repo *repository.TeamRepository, number int, name, group string) *domain.Team {
	t.Helper()

	team := &domain.Team{
		TeamNumber:      number,
		TeamName:        name,
		LeaderName:      name + " Leader",
		Member2Name:     name + " Member2",
		Member3Name:     name + " Member3",
		Member4Name:     name + " Member4",
		TotalMembers:    4,
		TeamGroup:       group,
		LeaderAuthCode:  "111111",
		Member2AuthCode: "222222",
		Member3AuthCode: "333333",
		Member4AuthCode: "444444",
	}

	id, err := repo.CreateTeam(context.Background(), team)
	require.NoError(t, err)
	team.ID = id
	return team
}

// SeedVoter inserts a voter bound to the given team.
func SeedVoter(t *testing.T, repo *repository.VoterRepository, team *domain.Team, nickname string) *domain.Voter {
	t.Helper()

	voter := &domain.Voter{
		LdapNickname: nickname,
		TeamID:       team.ID,
		VoterGroup:   team.TeamGroup,
	}
	id, err := repo.CreateVoter(context.Background(), voter)
	require.NoError(t, err)
	voter.ID = id
	return voter
}

// SeedJudge registers a judge in the given group.
func SeedJudge(t *testing.T, repo *repository.JudgeRepository, name, group string) *domain.Judge {
	t.Helper()

	judge := &domain.Judge{Name: name, JudgeGroup: group}
	id, err := repo.CreateJudge(context.Background(), judge)
	require.NoError(t, err)
	judge.ID = id
	return judge
}

// SeedTeams inserts n teams into the given group, numbered from 1.
func SeedTeams(t *testing.T, repo *repository.TeamRepository, n int, group string) []*domain.Team {
	t.Helper()

	teams := make([]*domain.Team, n)
	for i := 0; i < n; i++ {
		teams[i] = SeedTeam(t, repo, i+1, fmt.Sprintf("Team %s%d", group, i+1), group)
	}
	return teams
}
