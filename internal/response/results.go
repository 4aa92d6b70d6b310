package response

import "github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"

type ResultsResponse struct {
	Results []dto.TeamResultDTO `json:"results"`
}

type RankingsResponse struct {
	Rankings []dto.GroupRankingDTO `json:"rankings"`
}
