package request

type SaveTeamsRequest struct {
	Teams []SaveTeamEntry `json:"teams" validate:"required,min=1,dive"`
}

type SaveTeamEntry struct {
	TeamName     string `json:"team_name" validate:"required,min=1,max=100"`
	LeaderName   string `json:"leader_name" validate:"required,min=1,max=100"`
	Member2Name  string `json:"member2_name"`
	Member3Name  string `json:"member3_name"`
	Member4Name  string `json:"member4_name"`
	TeamGroup    string `json:"team_group" validate:"required,oneof=A B C"`
	TeamNumber   int    `json:"team_number" validate:"required,min=1"`
	TotalMembers int    `json:"total_members" validate:"min=1,max=4"`
}
