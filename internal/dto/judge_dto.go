package dto

import "time"

type JudgeDTO struct {
	CreatedAt               time.Time `json:"created_at"`
	Name                    string    `json:"name"`
	JudgeGroup              string    `json:"judge_group"`
	ID                      int64     `json:"id"`
	IdeaVotesUsed           int       `json:"idea_votes_used"`
	ImplementationVotesUsed int       `json:"implementation_votes_used"`
	HasVotedIdea            bool      `json:"has_voted_idea"`
	HasVotedImplementation  bool      `json:"has_voted_implementation"`
}
