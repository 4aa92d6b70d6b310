package domain

import "time"

// Voting categories.
const (
	CategoryIdea           = "idea"
	CategoryImplementation = "implementation"
)

// ValidCategory reports whether c is one of the two voting categories.
func ValidCategory(c string) bool {
	return c == CategoryIdea || c == CategoryImplementation
}

// Vote is a single ledger entry. Exactly one of VoterID and JudgeID is
// set; the caster's display name is denormalized so results survive
// actor deletion.
type Vote struct {
	CreatedAt time.Time `json:"created_at"`
	VoteType  string    `json:"vote_type"`
	VoterLdap string    `json:"voter_ldap,omitempty"`
	JudgeName string    `json:"judge_name,omitempty"`
	VoterID   *int64    `json:"voter_id,omitempty"`
	JudgeID   *int64    `json:"judge_id,omitempty"`
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
}
