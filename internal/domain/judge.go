package domain

import "time"

// JudgeVoteQuota is the number of votes a judge may cast per category.
const JudgeVoteQuota = 2

type Judge struct {
	CreatedAt               time.Time `json:"created_at"`
	Name                    string    `json:"name"`
	JudgeGroup              string    `json:"judge_group"`
	ID                      int64     `json:"id"`
	IdeaVotesUsed           int       `json:"idea_votes_used"`
	ImplementationVotesUsed int       `json:"implementation_votes_used"`
	HasVotedIdea            bool      `json:"has_voted_idea"`
	HasVotedImplementation  bool      `json:"has_voted_implementation"`
}

// VotesUsed returns how many votes the judge has spent in the given
// category.
func (j *Judge) VotesUsed(category string) int {
	if category == CategoryIdea {
		return j.IdeaVotesUsed
	}
	return j.ImplementationVotesUsed
}
