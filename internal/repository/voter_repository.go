package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/my_errors"
)

type VoterRepository struct {
	db *sql.DB
}

func NewVoterRepository(db *sql.DB) *VoterRepository {
	return &VoterRepository{db: db}
}

const voterColumns = `id, ldap_nickname, team_id, voter_group, has_voted_idea, has_voted_implementation, created_at`

func scanVoter(row interface{ Scan(...any) error }) (*domain.Voter, error) {
	var v domain.Voter
	err := row.Scan(&v.ID, &v.LdapNickname, &v.TeamID, &v.VoterGroup, &v.HasVotedIdea, &v.HasVotedImplementation, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VoterRepository) CreateVoter(ctx context.Context, voter *domain.Voter) (int64, error) {
	query := `INSERT INTO voters (ldap_nickname, team_id, voter_group, has_voted_idea, has_voted_implementation, created_at)
        VALUES (?, ?, ?, 0, 0, ?)`
	res, err := r.db.ExecContext(ctx, query, voter.LdapNickname, voter.TeamID, voter.VoterGroup, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to create voter: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get voter id: %w", err)
	}
	return id, nil
}

func (r *VoterRepository) GetVoterByID(ctx context.Context, id int64) (*domain.Voter, error) {
	query := `SELECT ` + voterColumns + ` FROM voters WHERE id = ?`
	voter, err := scanVoter(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, my_errors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	return voter, nil
}

func (r *VoterRepository) GetVoterByNickname(ctx context.Context, nickname string) (*domain.Voter, error) {
	query := `SELECT ` + voterColumns + ` FROM voters WHERE ldap_nickname = ?`
	voter, err := scanVoter(r.db.QueryRowContext(ctx, query, nickname))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, my_errors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter by nickname: %w", err)
	}
	return voter, nil
}

func (r *VoterRepository) GetAllVoters(ctx context.Context) ([]domain.Voter, error) {
	query := `SELECT ` + voterColumns + ` FROM voters ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all voters: %w", err)
	}
	defer rows.Close()

	var voters []domain.Voter
	for rows.Next() {
		voter, err := scanVoter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, *voter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voters: %w", err)
	}

	return voters, nil
}

// DeleteVoterWithVotes removes the voter record together with every
// vote it cast, in one transaction. Returns the number of removed
// votes.
func (r *VoterRepository) DeleteVoterWithVotes(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE voter_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete voter votes: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed votes: %w", err)
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM voters WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete voter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check voter deletion: %w", err)
	}
	if affected == 0 {
		return 0, my_errors.ErrVoterNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit voter deletion: %w", err)
	}
	return removed, nil
}
