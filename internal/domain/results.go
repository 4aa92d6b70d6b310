package domain

// TeamResult is a team joined with its slice of the vote ledger.
type TeamResult struct {
	Team
	IdeaVoters           []string `json:"idea_voters"`
	ImplementationVoters []string `json:"implementation_voters"`
	IdeaJudges           []string `json:"idea_judges"`
	ImplementationJudges []string `json:"implementation_judges"`
	IdeaVotes            int      `json:"idea_votes"`
	ImplementationVotes  int      `json:"implementation_votes"`
}

// Votes returns the vote count for the given category.
func (r *TeamResult) Votes(category string) int {
	if category == CategoryIdea {
		return r.IdeaVotes
	}
	return r.ImplementationVotes
}

// GroupRanking is the top teams of one group in one category, ordered
// by descending vote count. Ties keep the canonical listing order.
type GroupRanking struct {
	Group    string         `json:"group"`
	Category string         `json:"category"`
	Entries  []RankingEntry `json:"entries"`
}

type RankingEntry struct {
	TeamName   string `json:"team_name"`
	TeamNumber int    `json:"team_number"`
	Votes      int    `json:"votes"`
}
