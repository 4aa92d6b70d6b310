package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/my_errors"
)

type TeamService struct {
	teamRepo TeamRepository
}

func NewTeamService(teamRepo TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// GetTeams returns the canonical listing, optionally filtered to one
// group. Callers must not expose auth codes from the returned teams.
func (s *TeamService) GetTeams(ctx context.Context, group string) ([]domain.Team, error) {
	if group != "" && !domain.ValidGroup(group) {
		return nil, my_errors.ErrInvalidGroup
	}

	teams, err := s.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	if group == "" {
		return teams, nil
	}

	filtered := make([]domain.Team, 0, len(teams))
	for _, t := range teams {
		if t.TeamGroup == group {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (s *TeamService) GetAllTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	return s.teamRepo.DeleteTeam(ctx, id)
}

// ImportRoster replaces the whole roster. All four collections are
// wiped first: a new roster invalidates every voter, judge and vote of
// the previous event. Each named member gets a fresh 6-digit auth
// code.
func (s *TeamService) ImportRoster(ctx context.Context, entries []domain.RosterEntry) (*domain.RosterImportSummary, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("roster: %w", my_errors.ErrEmptyField)
	}

	teams := make([]domain.Team, 0, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.LeaderName) == "" {
			continue
		}
		group := strings.ToUpper(strings.TrimSpace(e.TeamGroup))
		if group == "" {
			group = domain.GroupA
		}
		if !domain.ValidGroup(group) {
			return nil, fmt.Errorf("row %d: %w", i+1, my_errors.ErrInvalidGroup)
		}

		team := domain.Team{
			TeamNumber:   e.TeamNumber,
			TeamName:     e.TeamName,
			LeaderName:   strings.TrimSpace(e.LeaderName),
			Member2Name:  strings.TrimSpace(e.Member2Name),
			Member3Name:  strings.TrimSpace(e.Member3Name),
			Member4Name:  strings.TrimSpace(e.Member4Name),
			TotalMembers: e.TotalMembers,
			TeamGroup:    group,
		}
		if team.TeamNumber == 0 {
			team.TeamNumber = i + 1
		}
		if team.TeamName == "" {
			team.TeamName = fmt.Sprintf("Team %d", team.TeamNumber)
		}
		if team.TotalMembers == 0 {
			team.TotalMembers = 1
		}
		if err := assignAuthCodes(&team); err != nil {
			return nil, fmt.Errorf("failed to assign auth codes: %w", err)
		}
		teams = append(teams, team)
	}

	if len(teams) == 0 {
		return nil, fmt.Errorf("roster has no usable rows: %w", my_errors.ErrInvalidInput)
	}

	if err := s.teamRepo.ReplaceAll(ctx, teams); err != nil {
		return nil, fmt.Errorf("failed to replace roster: %w", err)
	}

	return &domain.RosterImportSummary{TeamsImported: len(teams)}, nil
}

// ImportAuthCodes overwrites per-slot codes for rows that match an
// existing team by (number, name) and a known slot label. Unmatched
// rows are counted and reported, never fatal.
func (s *TeamService) ImportAuthCodes(ctx context.Context, entries []domain.AuthCodeEntry) (*domain.AuthCodeImportSummary, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("auth codes: %w", my_errors.ErrEmptyField)
	}

	teams, err := s.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	byKey := make(map[string]*domain.Team, len(teams))
	for i := range teams {
		byKey[teamKey(teams[i].TeamNumber, teams[i].TeamName)] = &teams[i]
	}

	summary := &domain.AuthCodeImportSummary{}
	touched := make(map[int64]*domain.Team)
	for _, e := range entries {
		team, ok := byKey[teamKey(e.TeamNumber, e.TeamName)]
		if !ok || !team.SetSlotCode(e.MemberSlot, e.AuthCode) {
			summary.Unmatched++
			continue
		}
		touched[team.ID] = team
		summary.Updated++
	}

	for _, team := range touched {
		if err := s.teamRepo.UpdateAuthCodes(ctx, team); err != nil {
			return nil, fmt.Errorf("failed to save auth codes for team %q: %w", team.TeamName, err)
		}
	}

	return summary, nil
}

func teamKey(number int, name string) string {
	return fmt.Sprintf("%d\x00%s", number, strings.TrimSpace(name))
}

func assignAuthCodes(team *domain.Team) error {
	var err error
	if team.LeaderAuthCode, err = generateAuthCode(); err != nil {
		return err
	}
	if team.Member2Name != "" {
		if team.Member2AuthCode, err = generateAuthCode(); err != nil {
			return err
		}
	}
	if team.Member3Name != "" {
		if team.Member3AuthCode, err = generateAuthCode(); err != nil {
			return err
		}
	}
	if team.Member4Name != "" {
		if team.Member4AuthCode, err = generateAuthCode(); err != nil {
			return err
		}
	}
	return nil
}

// generateAuthCode returns a random 6-digit code (100000-999999).
func generateAuthCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate auth code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
