package service

import (
	"context"
	"fmt"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/my_errors"
)

// VoteService is the vote ledger. It owns the quota and uniqueness
// rules; the repositories only persist what it has already validated.
type VoteService struct {
	voteRepo  VoteRepository
	voterRepo VoterRepository
	judgeRepo JudgeRepository
	teamRepo  TeamRepository
}

func NewVoteService(voteRepo VoteRepository, voterRepo VoterRepository, judgeRepo JudgeRepository, teamRepo TeamRepository) *VoteService {
	return &VoteService{
		voteRepo:  voteRepo,
		voterRepo: voterRepo,
		judgeRepo: judgeRepo,
		teamRepo:  teamRepo,
	}
}

// SubmitVoterVote records a voter's single per-category vote.
// Validation order: category, actor, per-category flag, target team,
// own-team and group eligibility.
func (s *VoteService) SubmitVoterVote(ctx context.Context, voterID, teamID int64, category string) (int64, error) {
	if !domain.ValidCategory(category) {
		return 0, my_errors.ErrInvalidCategory
	}

	voter, err := s.voterRepo.GetVoterByID(ctx, voterID)
	if err != nil {
		return 0, err
	}

	if voter.HasVoted(category) {
		return 0, my_errors.ErrAlreadyVoted
	}

	team, err := s.teamRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		return 0, err
	}

	if team.ID == voter.TeamID {
		return 0, my_errors.ErrOwnTeamVote
	}
	if team.TeamGroup != voter.VoterGroup {
		return 0, my_errors.ErrGroupMismatch
	}

	vote := &domain.Vote{
		VoterID:   &voter.ID,
		TeamID:    team.ID,
		VoteType:  category,
		VoterLdap: voter.LdapNickname,
	}
	id, err := s.voteRepo.CreateVoterVote(ctx, vote)
	if err != nil {
		return 0, fmt.Errorf("failed to record voter vote: %w", err)
	}
	return id, nil
}

// SubmitJudgeVote records one of a judge's two per-category votes.
// Validation order: category, actor, quota, duplicate target, target
// team, group eligibility.
func (s *VoteService) SubmitJudgeVote(ctx context.Context, judgeID, teamID int64, category string) (int64, error) {
	if !domain.ValidCategory(category) {
		return 0, my_errors.ErrInvalidCategory
	}

	judge, err := s.judgeRepo.GetJudgeByID(ctx, judgeID)
	if err != nil {
		return 0, err
	}

	if judge.VotesUsed(category) >= domain.JudgeVoteQuota {
		return 0, my_errors.ErrQuotaExceeded
	}

	duplicate, err := s.voteRepo.JudgeVoteExists(ctx, judge.ID, teamID, category)
	if err != nil {
		return 0, fmt.Errorf("failed to check duplicate vote: %w", err)
	}
	if duplicate {
		return 0, my_errors.ErrDuplicateTargetVote
	}

	team, err := s.teamRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		return 0, err
	}

	if team.TeamGroup != judge.JudgeGroup {
		return 0, my_errors.ErrGroupMismatch
	}

	vote := &domain.Vote{
		JudgeID:   &judge.ID,
		TeamID:    team.ID,
		VoteType:  category,
		JudgeName: judge.Name,
	}
	id, err := s.voteRepo.CreateJudgeVote(ctx, vote)
	if err != nil {
		return 0, fmt.Errorf("failed to record judge vote: %w", err)
	}
	return id, nil
}
