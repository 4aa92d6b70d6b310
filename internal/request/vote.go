package request

type VoterVoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=idea implementation"`
	VoterID  int64  `json:"voter_id" validate:"required,min=1"`
	TeamID   int64  `json:"team_id" validate:"required,min=1"`
}

type JudgeVoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=idea implementation"`
	JudgeID  int64  `json:"judge_id" validate:"required,min=1"`
	TeamID   int64  `json:"team_id" validate:"required,min=1"`
}
