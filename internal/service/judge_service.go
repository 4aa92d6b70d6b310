package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/my_errors"
)

type JudgeService struct {
	judgeRepo JudgeRepository
}

func NewJudgeService(judgeRepo JudgeRepository) *JudgeService {
	return &JudgeService{judgeRepo: judgeRepo}
}

func (s *JudgeService) GetAllJudges(ctx context.Context) ([]domain.Judge, error) {
	judges, err := s.judgeRepo.GetAllJudges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get judges: %w", err)
	}
	return judges, nil
}

func (s *JudgeService) CreateJudge(ctx context.Context, name, group string) (*domain.Judge, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name: %w", my_errors.ErrEmptyField)
	}
	if !domain.ValidGroup(group) {
		return nil, my_errors.ErrInvalidGroup
	}

	exists, err := s.judgeRepo.JudgeExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check judge: %w", err)
	}
	if exists {
		return nil, my_errors.ErrJudgeAlreadyExists
	}

	judge := &domain.Judge{Name: name, JudgeGroup: group}
	id, err := s.judgeRepo.CreateJudge(ctx, judge)
	if err != nil {
		return nil, fmt.Errorf("failed to create judge: %w", err)
	}
	judge.ID = id

	return judge, nil
}

// DeleteJudge removes the judge and all of its votes. Returns the
// number of votes removed.
func (s *JudgeService) DeleteJudge(ctx context.Context, id int64) (int64, error) {
	return s.judgeRepo.DeleteJudgeWithVotes(ctx, id)
}

// ResetJudgeVotes removes the judge's votes and zeroes its quota
// counters, keeping the judge registered.
func (s *JudgeService) ResetJudgeVotes(ctx context.Context, id int64) (int64, error) {
	return s.judgeRepo.ResetJudgeVotes(ctx, id)
}
