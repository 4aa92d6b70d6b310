package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/jwt"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/my_errors"
)

type AuthService struct {
	teamRepo      TeamRepository
	voterRepo     VoterRepository
	judgeRepo     JudgeRepository
	adminPassword string
	jwtSecret     string
}

func NewAuthService(teamRepo TeamRepository, voterRepo VoterRepository, judgeRepo JudgeRepository, adminPassword, jwtSecret string) *AuthService {
	return &AuthService{
		teamRepo:      teamRepo,
		voterRepo:     voterRepo,
		judgeRepo:     judgeRepo,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
	}
}

// AuthenticateVoter resolves a nickname to a voter record.
//
// An existing voter is returned as-is without re-checking the code:
// the first successful authentication permanently binds the nickname.
// Whether that is intended is an open question inherited from the
// original system; see DESIGN.md.
func (s *AuthService) AuthenticateVoter(ctx context.Context, nickname, authCode string) (*domain.Voter, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, fmt.Errorf("ldap_nickname: %w", my_errors.ErrEmptyField)
	}

	existing, err := s.voterRepo.GetVoterByNickname(ctx, nickname)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, my_errors.ErrVoterNotFound) {
		return nil, fmt.Errorf("failed to look up voter: %w", err)
	}

	teams, err := s.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	team, slot := findMember(teams, nickname)
	if team == nil {
		return nil, my_errors.ErrMemberNotFound
	}

	// Code comparison is exact; only the nickname match is
	// case-insensitive.
	if slot.Code == "" || slot.Code != authCode {
		return nil, my_errors.ErrInvalidAuthCode
	}

	voter := &domain.Voter{
		LdapNickname: nickname,
		TeamID:       team.ID,
		VoterGroup:   team.TeamGroup,
	}
	id, err := s.voterRepo.CreateVoter(ctx, voter)
	if err != nil {
		return nil, fmt.Errorf("failed to create voter: %w", err)
	}
	voter.ID = id

	return voter, nil
}

func findMember(teams []domain.Team, nickname string) (*domain.Team, *domain.MemberSlot) {
	for i := range teams {
		for _, slot := range teams[i].MemberSlots() {
			if strings.EqualFold(slot.Name, nickname) {
				return &teams[i], &slot
			}
		}
	}
	return nil, nil
}

// AuthenticateJudge resolves a judge by name against the admin-managed
// registry. Unknown names are rejected; the judge's group always comes
// from the registry, never from the request.
func (s *AuthService) AuthenticateJudge(ctx context.Context, name string) (*domain.Judge, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name: %w", my_errors.ErrEmptyField)
	}

	judge, err := s.judgeRepo.GetJudgeByName(ctx, name)
	if err != nil {
		if errors.Is(err, my_errors.ErrJudgeNotFound) {
			return nil, my_errors.ErrJudgeNotFound
		}
		return nil, fmt.Errorf("failed to look up judge: %w", err)
	}

	return judge, nil
}

func (s *AuthService) AdminLogin(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", my_errors.ErrInvalidPassword
	}

	token, err := jwt.GenerateToken("admin", s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := jwt.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Role != "admin" {
		return "", fmt.Errorf("%w", my_errors.ErrInvalidToken)
	}
	return claims.Role, nil
}
