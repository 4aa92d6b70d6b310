package domain

import "time"

type Voter struct {
	CreatedAt              time.Time `json:"created_at"`
	LdapNickname           string    `json:"ldap_nickname"`
	VoterGroup             string    `json:"voter_group"`
	ID                     int64     `json:"id"`
	TeamID                 int64     `json:"team_id"`
	HasVotedIdea           bool      `json:"has_voted_idea"`
	HasVotedImplementation bool      `json:"has_voted_implementation"`
}

// HasVoted reports whether the voter already used their single vote in
// the given category.
func (v *Voter) HasVoted(category string) bool {
	if category == CategoryIdea {
		return v.HasVotedIdea
	}
	return v.HasVotedImplementation
}
