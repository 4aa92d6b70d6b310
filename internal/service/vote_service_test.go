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

type voteFixture struct {
	svc       *VoteService
	teamRepo  *repository.TeamRepository
	voterRepo *repository.VoterRepository
	judgeRepo *repository.JudgeRepository
	voteRepo  *repository.VoteRepository
}

func newVoteFixture(t *testing.T) *voteFixture {
	db := testutil.NewTestDB(t)
	teamRepo := repository.NewTeamRepository(db)
	voterRepo := repository.NewVoterRepository(db)
	judgeRepo := repository.NewJudgeRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	return &voteFixture{
		svc:       NewVoteService(voteRepo, voterRepo, judgeRepo, teamRepo),
		teamRepo:  teamRepo,
		voterRepo: voterRepo,
		judgeRepo: judgeRepo,
		voteRepo:  voteRepo,
	}
}

func TestSubmitVoterVote(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	own := testutil.SeedTeam(t, f.teamRepo, 1, "Alpha", domain.GroupA)
	target := testutil.SeedTeam(t, f.teamRepo, 2, "Beta", domain.GroupA)
	voter := testutil.SeedVoter(t, f.voterRepo, own, "alice")

	voteID, err := f.svc.SubmitVoterVote(ctx, voter.ID, target.ID, domain.CategoryIdea)
	require.NoError(t, err)
	assert.Greater(t, voteID, int64(0))

	// One vote per category.
	_, err = f.svc.SubmitVoterVote(ctx, voter.ID, target.ID, domain.CategoryIdea)
	assert.ErrorIs(t, err, my_errors.ErrAlreadyVoted)

	// The other category is still open.
	_, err = f.svc.SubmitVoterVote(ctx, voter.ID, target.ID, domain.CategoryImplementation)
	assert.NoError(t, err)

	votes, err := f.voteRepo.GetAllVotes(ctx)
	require.NoError(t, err)
	assert.Len(t, votes, 2)
	assert.Equal(t, "alice", votes[0].VoterLdap)
}

func TestSubmitVoterVote_OwnTeam(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	own := testutil.SeedTeam(t, f.teamRepo, 1, "Alpha", domain.GroupA)
	voter := testutil.SeedVoter(t, f.voterRepo, own, "alice")

	_, err := f.svc.SubmitVoterVote(ctx, voter.ID, own.ID, domain.CategoryIdea)
	assert.ErrorIs(t, err, my_errors.ErrOwnTeamVote)
}

func TestSubmitVoterVote_GroupMismatch(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	own := testutil.SeedTeam(t, f.teamRepo, 1, "Alpha", domain.GroupA)
	other := testutil.SeedTeam(t, f.teamRepo, 2, "Bravo", domain.GroupB)
	voter := testutil.SeedVoter(t, f.voterRepo, own, "alice")

	_, err := f.svc.SubmitVoterVote(ctx, voter.ID, other.ID, domain.CategoryIdea)
	assert.ErrorIs(t, err, my_errors.ErrGroupMismatch)
}

func TestSubmitVoterVote_Invalid(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	own := testutil.SeedTeam(t, f.teamRepo, 1, "Alpha", domain.GroupA)
	target := testutil.SeedTeam(t, f.teamRepo, 2, "Beta", domain.GroupA)
	voter := testutil.SeedVoter(t, f.voterRepo, own, "alice")

	_, err := f.svc.SubmitVoterVote(ctx, voter.ID, target.ID, "design")
	assert.ErrorIs(t, err, my_errors.ErrInvalidCategory)

	_, err = f.svc.SubmitVoterVote(ctx, 999, target.ID, domain.CategoryIdea)
	assert.ErrorIs(t, err, my_errors.ErrVoterNotFound)

	_, err = f.svc.SubmitVoterVote(ctx, voter.ID, 999, domain.CategoryIdea)
	assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
}

func TestSubmitJudgeVote_Quota(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	teams := testutil.SeedTeams(t, f.teamRepo, 3, domain.GroupA)
	judge := testutil.SeedJudge(t, f.judgeRepo, "Grace", domain.GroupA)

	_, err := f.svc.SubmitJudgeVote(ctx, judge.ID, teams[0].ID, domain.CategoryIdea)
	require.NoError(t, err)
	_, err = f.svc.SubmitJudgeVote(ctx, judge.ID, teams[1].ID, domain.CategoryIdea)
	require.NoError(t, err)

	// Two idea votes used; the third is over quota.
	_, err = f.svc.SubmitJudgeVote(ctx, judge.ID, teams[2].ID, domain.CategoryIdea)
	assert.ErrorIs(t, err, my_errors.ErrQuotaExceeded)

	// Quota is per category.
	_, err = f.svc.SubmitJudgeVote(ctx, judge.ID, teams[2].ID, domain.CategoryImplementation)
	assert.NoError(t, err)
}

func TestSubmitJudgeVote_DuplicateTarget(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	teams := testutil.SeedTeams(t, f.teamRepo, 2, domain.GroupA)
	judge := testutil.SeedJudge(t, f.judgeRepo, "Grace", domain.GroupA)

	_, err := f.svc.SubmitJudgeVote(ctx, judge.ID, teams[0].ID, domain.CategoryIdea)
	require.NoError(t, err)

	_, err = f.svc.SubmitJudgeVote(ctx, judge.ID, teams[0].ID, domain.CategoryIdea)
	assert.ErrorIs(t, err, my_errors.ErrDuplicateTargetVote)

	// Same team is fine in the other category.
	_, err = f.svc.SubmitJudgeVote(ctx, judge.ID, teams[0].ID, domain.CategoryImplementation)
	assert.NoError(t, err)
}

func TestSubmitJudgeVote_GroupMismatch(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	team := testutil.SeedTeam(t, f.teamRepo, 1, "Bravo", domain.GroupB)
	judge := testutil.SeedJudge(t, f.judgeRepo, "Grace", domain.GroupA)

	_, err := f.svc.SubmitJudgeVote(ctx, judge.ID, team.ID, domain.CategoryIdea)
	assert.ErrorIs(t, err, my_errors.ErrGroupMismatch)
}

func TestSubmitJudgeVote_CountersPersisted(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	teams := testutil.SeedTeams(t, f.teamRepo, 2, domain.GroupA)
	judge := testutil.SeedJudge(t, f.judgeRepo, "Grace", domain.GroupA)

	_, err := f.svc.SubmitJudgeVote(ctx, judge.ID, teams[0].ID, domain.CategoryIdea)
	require.NoError(t, err)
	_, err = f.svc.SubmitJudgeVote(ctx, judge.ID, teams[1].ID, domain.CategoryIdea)
	require.NoError(t, err)

	reloaded, err := f.judgeRepo.GetJudgeByID(ctx, judge.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.IdeaVotesUsed)
	assert.Equal(t, 0, reloaded.ImplementationVotesUsed)
	assert.True(t, reloaded.HasVotedIdea)
	assert.False(t, reloaded.HasVotedImplementation)
}
