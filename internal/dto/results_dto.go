package dto

type TeamResultDTO struct {
	TeamName             string   `json:"team_name"`
	LeaderName           string   `json:"leader_name"`
	TeamGroup            string   `json:"team_group"`
	IdeaVoters           []string `json:"idea_voters"`
	ImplementationVoters []string `json:"implementation_voters"`
	IdeaJudges           []string `json:"idea_judges"`
	ImplementationJudges []string `json:"implementation_judges"`
	ID                   int64    `json:"id"`
	TeamNumber           int      `json:"team_number"`
	TotalMembers         int      `json:"total_members"`
	IdeaVotes            int      `json:"idea_votes"`
	ImplementationVotes  int      `json:"implementation_votes"`
	TotalVotes           int      `json:"total_votes"`
}

type GroupRankingDTO struct {
	Group    string            `json:"group"`
	Category string            `json:"category"`
	Entries  []RankingEntryDTO `json:"entries"`
}

type RankingEntryDTO struct {
	TeamName   string `json:"team_name"`
	TeamNumber int    `json:"team_number"`
	Votes      int    `json:"votes"`
}
