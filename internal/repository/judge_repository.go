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

type JudgeRepository struct {
	db *sql.DB
}

func NewJudgeRepository(db *sql.DB) *JudgeRepository {
	return &JudgeRepository{db: db}
}

const judgeColumns = `id, name, judge_group, has_voted_idea, has_voted_implementation, idea_votes_used, implementation_votes_used, created_at`

func scanJudge(row interface{ Scan(...any) error }) (*domain.Judge, error) {
	var j domain.Judge
	err := row.Scan(&j.ID, &j.Name, &j.JudgeGroup, &j.HasVotedIdea, &j.HasVotedImplementation, &j.IdeaVotesUsed, &j.ImplementationVotesUsed, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JudgeRepository) CreateJudge(ctx context.Context, judge *domain.Judge) (int64, error) {
	query := `INSERT INTO judges (name, judge_group, has_voted_idea, has_voted_implementation, idea_votes_used, implementation_votes_used, created_at)
        VALUES (?, ?, 0, 0, 0, 0, ?)`
	res, err := r.db.ExecContext(ctx, query, judge.Name, judge.JudgeGroup, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to create judge: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get judge id: %w", err)
	}
	return id, nil
}

func (r *JudgeRepository) GetJudgeByID(ctx context.Context, id int64) (*domain.Judge, error) {
	query := `SELECT ` + judgeColumns + ` FROM judges WHERE id = ?`
	judge, err := scanJudge(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, my_errors.ErrJudgeNotFound
		}
		return nil, fmt.Errorf("failed to get judge: %w", err)
	}
	return judge, nil
}

func (r *JudgeRepository) GetJudgeByName(ctx context.Context, name string) (*domain.Judge, error) {
	query := `SELECT ` + judgeColumns + ` FROM judges WHERE name = ?`
	judge, err := scanJudge(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, my_errors.ErrJudgeNotFound
		}
		return nil, fmt.Errorf("failed to get judge by name: %w", err)
	}
	return judge, nil
}

// JudgeExistsByName matches case-insensitively, mirroring the admin
// duplicate check on creation.
func (r *JudgeRepository) JudgeExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM judges WHERE LOWER(name) = LOWER(?))`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check judge existence: %w", err)
	}
	return exists, nil
}

func (r *JudgeRepository) GetAllJudges(ctx context.Context) ([]domain.Judge, error) {
	query := `SELECT ` + judgeColumns + ` FROM judges ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all judges: %w", err)
	}
	defer rows.Close()

	var judges []domain.Judge
	for rows.Next() {
		judge, err := scanJudge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan judge: %w", err)
		}
		judges = append(judges, *judge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate judges: %w", err)
	}

	return judges, nil
}

// DeleteJudgeWithVotes removes the judge together with every vote it
// cast, in one transaction. Returns the number of removed votes.
func (r *JudgeRepository) DeleteJudgeWithVotes(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE judge_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete judge votes: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed votes: %w", err)
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM judges WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete judge: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check judge deletion: %w", err)
	}
	if affected == 0 {
		return 0, my_errors.ErrJudgeNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit judge deletion: %w", err)
	}
	return removed, nil
}

// ResetJudgeVotes deletes the judge's votes and zeroes its counters
// and flags, keeping the judge registered.
func (r *JudgeRepository) ResetJudgeVotes(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE judge_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete judge votes: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed votes: %w", err)
	}

	res, err = tx.ExecContext(ctx, `UPDATE judges
        SET has_voted_idea = 0, has_voted_implementation = 0, idea_votes_used = 0, implementation_votes_used = 0
        WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to reset judge: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check judge reset: %w", err)
	}
	if affected == 0 {
		return 0, my_errors.ErrJudgeNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit judge reset: %w", err)
	}
	return removed, nil
}
