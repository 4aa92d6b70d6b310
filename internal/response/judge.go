package response

import "github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"

type JudgesResponse struct {
	Judges []dto.JudgeDTO `json:"judges"`
	Count  int            `json:"count"`
}

type JudgeResponse struct {
	Judge   dto.JudgeDTO `json:"judge"`
	Message string       `json:"message"`
}

type ResetVotesResponse struct {
	Message      string `json:"message"`
	RemovedVotes int64  `json:"removed_votes"`
}
