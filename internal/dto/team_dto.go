package dto

import "time"

// TeamDTO is the public view of a team. Auth codes are never
// serialized here.
type TeamDTO struct {
	CreatedAt    time.Time `json:"created_at"`
	TeamName     string    `json:"team_name"`
	LeaderName   string    `json:"leader_name"`
	Member2Name  string    `json:"member2_name,omitempty"`
	Member3Name  string    `json:"member3_name,omitempty"`
	Member4Name  string    `json:"member4_name,omitempty"`
	TeamGroup    string    `json:"team_group"`
	ID           int64     `json:"id"`
	TeamNumber   int       `json:"team_number"`
	TotalMembers int       `json:"total_members"`
}

// AdminTeamDTO additionally carries the per-slot auth codes; only
// admin endpoints return it.
type AdminTeamDTO struct {
	TeamDTO
	LeaderAuthCode  string `json:"leader_auth_code,omitempty"`
	Member2AuthCode string `json:"member2_auth_code,omitempty"`
	Member3AuthCode string `json:"member3_auth_code,omitempty"`
	Member4AuthCode string `json:"member4_auth_code,omitempty"`
}
