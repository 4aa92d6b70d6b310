package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/domain"
)

// ResultsService joins the vote ledger back to teams. Aggregation
// happens in memory over the full ledger; at conference scale that is
// a few hundred rows.
type ResultsService struct {
	teamRepo TeamRepository
	voteRepo VoteRepository
}

func NewResultsService(teamRepo TeamRepository, voteRepo VoteRepository) *ResultsService {
	return &ResultsService{teamRepo: teamRepo, voteRepo: voteRepo}
}

// GetResults returns one row per team in canonical order (group asc,
// team number asc) with per-category counts and caster names.
func (s *ResultsService) GetResults(ctx context.Context) ([]domain.TeamResult, error) {
	teams, err := s.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	votes, err := s.voteRepo.GetAllVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes: %w", err)
	}

	byTeam := make(map[int64][]domain.Vote, len(teams))
	for _, v := range votes {
		byTeam[v.TeamID] = append(byTeam[v.TeamID], v)
	}

	results := make([]domain.TeamResult, 0, len(teams))
	for _, team := range teams {
		res := domain.TeamResult{
			Team:                 team,
			IdeaVoters:           []string{},
			ImplementationVoters: []string{},
			IdeaJudges:           []string{},
			ImplementationJudges: []string{},
		}
		for _, v := range byTeam[team.ID] {
			switch v.VoteType {
			case domain.CategoryIdea:
				res.IdeaVotes++
				if v.VoterLdap != "" {
					res.IdeaVoters = append(res.IdeaVoters, v.VoterLdap)
				}
				if v.JudgeName != "" {
					res.IdeaJudges = append(res.IdeaJudges, v.JudgeName)
				}
			case domain.CategoryImplementation:
				res.ImplementationVotes++
				if v.VoterLdap != "" {
					res.ImplementationVoters = append(res.ImplementationVoters, v.VoterLdap)
				}
				if v.JudgeName != "" {
					res.ImplementationJudges = append(res.ImplementationJudges, v.JudgeName)
				}
			}
		}
		results = append(results, res)
	}

	return results, nil
}

// RankingSize caps how many teams a group ranking lists.
const RankingSize = 3

// GetRankings returns the group-scoped top teams per category, votes
// descending. Ties keep the canonical listing order (stable sort).
func (s *ResultsService) GetRankings(ctx context.Context) ([]domain.GroupRanking, error) {
	results, err := s.GetResults(ctx)
	if err != nil {
		return nil, err
	}
	return RankResults(results), nil
}

// RankResults computes rankings from an already aggregated listing.
func RankResults(results []domain.TeamResult) []domain.GroupRanking {
	groups := []string{domain.GroupA, domain.GroupB, domain.GroupC}
	categories := []string{domain.CategoryIdea, domain.CategoryImplementation}

	var rankings []domain.GroupRanking
	for _, group := range groups {
		var groupResults []domain.TeamResult
		for _, r := range results {
			if r.TeamGroup == group {
				groupResults = append(groupResults, r)
			}
		}
		if len(groupResults) == 0 {
			continue
		}

		for _, category := range categories {
			ranked := make([]domain.TeamResult, len(groupResults))
			copy(ranked, groupResults)
			sort.SliceStable(ranked, func(i, j int) bool {
				return ranked[i].Votes(category) > ranked[j].Votes(category)
			})
			if len(ranked) > RankingSize {
				ranked = ranked[:RankingSize]
			}

			entries := make([]domain.RankingEntry, len(ranked))
			for i, r := range ranked {
				entries[i] = domain.RankingEntry{
					TeamName:   r.TeamName,
					TeamNumber: r.TeamNumber,
					Votes:      r.Votes(category),
				}
			}
			rankings = append(rankings, domain.GroupRanking{
				Group:    group,
				Category: category,
				Entries:  entries,
			})
		}
	}

	return rankings
}
