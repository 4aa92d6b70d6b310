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

type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

const teamColumns = `id, team_number, team_name, leader_name, member2_name, member3_name, member4_name,
        total_members, team_group, leader_auth_code, member2_auth_code, member3_auth_code, member4_auth_code, created_at`

func scanTeam(row interface{ Scan(...any) error }) (*domain.Team, error) {
	var t domain.Team
	err := row.Scan(
		&t.ID, &t.TeamNumber, &t.TeamName, &t.LeaderName, &t.Member2Name, &t.Member3Name, &t.Member4Name,
		&t.TotalMembers, &t.TeamGroup, &t.LeaderAuthCode, &t.Member2AuthCode, &t.Member3AuthCode, &t.Member4AuthCode, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team *domain.Team) (int64, error) {
	query := `INSERT INTO teams (team_number, team_name, leader_name, member2_name, member3_name, member4_name,
        total_members, team_group, leader_auth_code, member2_auth_code, member3_auth_code, member4_auth_code, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		team.TeamNumber, team.TeamName, team.LeaderName, team.Member2Name, team.Member3Name, team.Member4Name,
		team.TotalMembers, team.TeamGroup, team.LeaderAuthCode, team.Member2AuthCode, team.Member3AuthCode, team.Member4AuthCode,
		time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create team: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get team id: %w", err)
	}
	return id, nil
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = ?`
	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, my_errors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetAllTeams returns every team in canonical listing order: group
// ascending, then team number ascending.
func (r *TeamRepository) GetAllTeams(ctx context.Context) ([]domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY team_group, team_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion: %w", err)
	}
	if affected == 0 {
		return my_errors.ErrTeamNotFound
	}
	return nil
}

// ReplaceAll wipes teams, voters, judges and votes, then inserts the
// new roster. Everything happens in one transaction so a failed import
// cannot leave a half-replaced roster behind.
func (r *TeamRepository) ReplaceAll(ctx context.Context, teams []domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"votes", "voters", "judges", "teams"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	insert := `INSERT INTO teams (team_number, team_name, leader_name, member2_name, member3_name, member4_name,
        total_members, team_group, leader_auth_code, member2_auth_code, member3_auth_code, member4_auth_code, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC()
	for _, team := range teams {
		_, err := tx.ExecContext(ctx, insert,
			team.TeamNumber, team.TeamName, team.LeaderName, team.Member2Name, team.Member3Name, team.Member4Name,
			team.TotalMembers, team.TeamGroup, team.LeaderAuthCode, team.Member2AuthCode, team.Member3AuthCode, team.Member4AuthCode,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert team %q: %w", team.TeamName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster replace: %w", err)
	}
	return nil
}

func (r *TeamRepository) UpdateAuthCodes(ctx context.Context, team *domain.Team) error {
	query := `UPDATE teams SET leader_auth_code = ?, member2_auth_code = ?, member3_auth_code = ?, member4_auth_code = ?
        WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		team.LeaderAuthCode, team.Member2AuthCode, team.Member3AuthCode, team.Member4AuthCode, team.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update auth codes: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check auth code update: %w", err)
	}
	if affected == 0 {
		return my_errors.ErrTeamNotFound
	}
	return nil
}
