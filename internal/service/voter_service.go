package service

import (
	"context"
	"fmt"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
)

type VoterService struct {
	voterRepo VoterRepository
}

func NewVoterService(voterRepo VoterRepository) *VoterService {
	return &VoterService{voterRepo: voterRepo}
}

func (s *VoterService) GetAllVoters(ctx context.Context) ([]domain.Voter, error) {
	voters, err := s.voterRepo.GetAllVoters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get voters: %w", err)
	}
	return voters, nil
}

// ResetVoterVotes removes the voter's votes and deletes the voter
// record, so the member can authenticate from scratch. Returns the
// number of votes removed.
func (s *VoterService) ResetVoterVotes(ctx context.Context, id int64) (int64, error) {
	return s.voterRepo.DeleteVoterWithVotes(ctx, id)
}
