package service

import (
	"context"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
)

type TeamRepository interface {
	CreateTeam(ctx context.Context, team *domain.Team) (int64, error)
	GetTeamByID(ctx context.Context, id int64) (*domain.Team, error)
	GetAllTeams(ctx context.Context) ([]domain.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, teams []domain.Team) error
	UpdateAuthCodes(ctx context.Context, team *domain.Team) error
}

type VoterRepository interface {
	CreateVoter(ctx context.Context, voter *domain.Voter) (int64, error)
	GetVoterByID(ctx context.Context, id int64) (*domain.Voter, error)
	GetVoterByNickname(ctx context.Context, nickname string) (*domain.Voter, error)
	GetAllVoters(ctx context.Context) ([]domain.Voter, error)
	DeleteVoterWithVotes(ctx context.Context, id int64) (int64, error)
}

type JudgeRepository interface {
	CreateJudge(ctx context.Context, judge *domain.Judge) (int64, error)
	GetJudgeByID(ctx context.Context, id int64) (*domain.Judge, error)
	GetJudgeByName(ctx context.Context, name string) (*domain.Judge, error)
	JudgeExistsByName(ctx context.Context, name string) (bool, error)
	GetAllJudges(ctx context.Context) ([]domain.Judge, error)
	DeleteJudgeWithVotes(ctx context.Context, id int64) (int64, error)
	ResetJudgeVotes(ctx context.Context, id int64) (int64, error)
}

type VoteRepository interface {
	CreateVoterVote(ctx context.Context, vote *domain.Vote) (int64, error)
	CreateJudgeVote(ctx context.Context, vote *domain.Vote) (int64, error)
	JudgeVoteExists(ctx context.Context, judgeID, teamID int64, category string) (bool, error)
	GetAllVotes(ctx context.Context) ([]domain.Vote, error)
}
