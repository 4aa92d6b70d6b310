package response

import "github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"

type TeamsResponse struct {
	Teams []dto.TeamDTO `json:"teams"`
	Count int           `json:"count"`
}

type AdminTeamsResponse struct {
	Teams []dto.AdminTeamDTO `json:"teams"`
	Count int                `json:"count"`
}

type RosterImportResponse struct {
	Message       string `json:"message"`
	TeamsImported int    `json:"teams_imported"`
}

type AuthCodeImportResponse struct {
	Message   string `json:"message"`
	Updated   int    `json:"updated"`
	Unmatched int    `json:"unmatched"`
}

type DeleteTeamResponse struct {
	Message string `json:"message"`
}
