package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/my_errors"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/repository"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/testutil"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.TeamRepository, *repository.JudgeRepository) {
	db := testutil.NewTestDB(t)
	teamRepo := repository.NewTeamRepository(db)
	voterRepo := repository.NewVoterRepository(db)
	judgeRepo := repository.NewJudgeRepository(db)

	svc := NewAuthService(teamRepo, voterRepo, judgeRepo, "hunter2", "test-secret")
	return svc, teamRepo, judgeRepo
}

func TestAuthenticateVoter(t *testing.T) {
	ctx := context.Background()
	svc, teamRepo, _ := newAuthFixture(t)

	team := testutil.SeedTeam(t, teamRepo, 1, "Alpha", domain.GroupA)

	voter, err := svc.AuthenticateVoter(ctx, "Alpha Member2", "222222")
	require.NoError(t, err)
	assert.Equal(t, team.ID, voter.TeamID)
	assert.Equal(t, domain.GroupA, voter.VoterGroup)
	assert.Greater(t, voter.ID, int64(0))
}

func TestAuthenticateVoter_NicknameCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, teamRepo, _ := newAuthFixture(t)

	testutil.SeedTeam(t, teamRepo, 1, "Alpha", domain.GroupA)

	voter, err := svc.AuthenticateVoter(ctx, "alpha leader", "111111")
	require.NoError(t, err)
	assert.Equal(t, "alpha leader", voter.LdapNickname)
}

func TestAuthenticateVoter_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, teamRepo, _ := newAuthFixture(t)

	testutil.SeedTeam(t, teamRepo, 1, "Alpha", domain.GroupA)

	_, err := svc.AuthenticateVoter(ctx, "Alpha Leader", "999999")
	assert.ErrorIs(t, err, my_errors.ErrInvalidAuthCode)

	_, err = svc.AuthenticateVoter(ctx, "nobody", "111111")
	assert.ErrorIs(t, err, my_errors.ErrMemberNotFound)

	_, err = svc.AuthenticateVoter(ctx, "   ", "111111")
	assert.ErrorIs(t, err, my_errors.ErrEmptyField)
}

func TestAuthenticateVoter_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, teamRepo, _ := newAuthFixture(t)

	testutil.SeedTeam(t, teamRepo, 1, "Alpha", domain.GroupA)

	first, err := svc.AuthenticateVoter(ctx, "Alpha Leader", "111111")
	require.NoError(t, err)

	// A known nickname resolves to the same voter regardless of the
	// code supplied on later attempts.
	again, err := svc.AuthenticateVoter(ctx, "Alpha Leader", "000000")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestAuthenticateJudge(t *testing.T) {
	ctx := context.Background()
	svc, _, judgeRepo := newAuthFixture(t)

	seeded := testutil.SeedJudge(t, judgeRepo, "Grace", domain.GroupB)

	judge, err := svc.AuthenticateJudge(ctx, "Grace")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, judge.ID)
	assert.Equal(t, domain.GroupB, judge.JudgeGroup)

	_, err = svc.AuthenticateJudge(ctx, "Unknown")
	assert.ErrorIs(t, err, my_errors.ErrJudgeNotFound)
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture(t)

	token, err := svc.AdminLogin(ctx, "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	role, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)

	_, err = svc.AdminLogin(ctx, "wrong")
	assert.ErrorIs(t, err, my_errors.ErrInvalidPassword)

	_, err = svc.ValidateToken(ctx, "not-a-token")
	assert.Error(t, err)
}
