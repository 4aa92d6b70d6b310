package dto

import "time"

type VoterDTO struct {
	CreatedAt              time.Time `json:"created_at"`
	LdapNickname           string    `json:"ldap_nickname"`
	VoterGroup             string    `json:"voter_group"`
	ID                     int64     `json:"id"`
	TeamID                 int64     `json:"team_id"`
	HasVotedIdea           bool      `json:"has_voted_idea"`
	HasVotedImplementation bool      `json:"has_voted_implementation"`
}
