package response

type VoteResponse struct {
	Message  string `json:"message"`
	VoteType string `json:"vote_type"`
	VoteID   int64  `json:"vote_id"`
}
