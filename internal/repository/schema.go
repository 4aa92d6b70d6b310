package repository

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// INTEGER PRIMARY KEY allocates max(id)+1, or 1 for an empty table,
// which is exactly the id scheme the vote ledger requires.
const schema = `
CREATE TABLE IF NOT EXISTS teams (
    id INTEGER PRIMARY KEY,
    team_number INTEGER NOT NULL,
    team_name TEXT NOT NULL,
    leader_name TEXT NOT NULL,
    member2_name TEXT NOT NULL DEFAULT '',
    member3_name TEXT NOT NULL DEFAULT '',
    member4_name TEXT NOT NULL DEFAULT '',
    total_members INTEGER NOT NULL DEFAULT 1,
    team_group TEXT NOT NULL CHECK (team_group IN ('A', 'B', 'C')),
    leader_auth_code TEXT NOT NULL DEFAULT '',
    member2_auth_code TEXT NOT NULL DEFAULT '',
    member3_auth_code TEXT NOT NULL DEFAULT '',
    member4_auth_code TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_teams_group_number ON teams(team_group, team_number);

CREATE TABLE IF NOT EXISTS voters (
    id INTEGER PRIMARY KEY,
    ldap_nickname TEXT NOT NULL UNIQUE,
    team_id INTEGER NOT NULL,
    voter_group TEXT NOT NULL CHECK (voter_group IN ('A', 'B', 'C')),
    has_voted_idea INTEGER NOT NULL DEFAULT 0,
    has_voted_implementation INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS judges (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    judge_group TEXT NOT NULL CHECK (judge_group IN ('A', 'B', 'C')),
    has_voted_idea INTEGER NOT NULL DEFAULT 0,
    has_voted_implementation INTEGER NOT NULL DEFAULT 0,
    idea_votes_used INTEGER NOT NULL DEFAULT 0 CHECK (idea_votes_used <= 2),
    implementation_votes_used INTEGER NOT NULL DEFAULT 0 CHECK (implementation_votes_used <= 2),
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY,
    voter_id INTEGER,
    judge_id INTEGER,
    team_id INTEGER NOT NULL,
    vote_type TEXT NOT NULL CHECK (vote_type IN ('idea', 'implementation')),
    voter_ldap TEXT NOT NULL DEFAULT '',
    judge_name TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    CHECK ((voter_id IS NULL) != (judge_id IS NULL))
);

CREATE INDEX IF NOT EXISTS idx_votes_team ON votes(team_id);
CREATE INDEX IF NOT EXISTS idx_votes_judge ON votes(judge_id, team_id, vote_type);
`
