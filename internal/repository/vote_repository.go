package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
)

type VoteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// CreateVoterVote appends the vote and flips the voter's per-category
// flag in a single transaction, so the ledger and the actor state
// cannot drift apart.
func (r *VoteRepository) CreateVoterVote(ctx context.Context, vote *domain.Vote) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := insertVote(ctx, tx, vote)
	if err != nil {
		return 0, err
	}

	flag := "has_voted_idea"
	if vote.VoteType == domain.CategoryImplementation {
		flag = "has_voted_implementation"
	}
	if _, err := tx.ExecContext(ctx, `UPDATE voters SET `+flag+` = 1 WHERE id = ?`, *vote.VoterID); err != nil {
		return 0, fmt.Errorf("failed to update voter flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit voter vote: %w", err)
	}
	return id, nil
}

// CreateJudgeVote appends the vote and bumps the judge's per-category
// counter and flag in a single transaction.
func (r *VoteRepository) CreateJudgeVote(ctx context.Context, vote *domain.Vote) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := insertVote(ctx, tx, vote)
	if err != nil {
		return 0, err
	}

	var update string
	if vote.VoteType == domain.CategoryIdea {
		update = `UPDATE judges SET has_voted_idea = 1, idea_votes_used = idea_votes_used + 1 WHERE id = ?`
	} else {
		update = `UPDATE judges SET has_voted_implementation = 1, implementation_votes_used = implementation_votes_used + 1 WHERE id = ?`
	}
	if _, err := tx.ExecContext(ctx, update, *vote.JudgeID); err != nil {
		return 0, fmt.Errorf("failed to update judge counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit judge vote: %w", err)
	}
	return id, nil
}

func insertVote(ctx context.Context, tx *sql.Tx, vote *domain.Vote) (int64, error) {
	query := `INSERT INTO votes (voter_id, judge_id, team_id, vote_type, voter_ldap, judge_name, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, query,
		vote.VoterID, vote.JudgeID, vote.TeamID, vote.VoteType, vote.VoterLdap, vote.JudgeName, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert vote: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get vote id: %w", err)
	}
	return id, nil
}

func (r *VoteRepository) JudgeVoteExists(ctx context.Context, judgeID, teamID int64, category string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM votes WHERE judge_id = ? AND team_id = ? AND vote_type = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, judgeID, teamID, category).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check judge vote: %w", err)
	}
	return exists, nil
}

// GetAllVotes returns the whole ledger in insertion order. The results
// aggregator joins it against teams in memory.
func (r *VoteRepository) GetAllVotes(ctx context.Context) ([]domain.Vote, error) {
	query := `SELECT id, voter_id, judge_id, team_id, vote_type, voter_ldap, judge_name, created_at
        FROM votes ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		var voterID, judgeID sql.NullInt64
		if err := rows.Scan(&v.ID, &voterID, &judgeID, &v.TeamID, &v.VoteType, &v.VoterLdap, &v.JudgeName, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if voterID.Valid {
			v.VoterID = &voterID.Int64
		}
		if judgeID.Valid {
			v.JudgeID = &judgeID.Int64
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}

	return votes, nil
}
