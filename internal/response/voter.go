package response

import "github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"

type VotersResponse struct {
	Voters []dto.VoterDTO `json:"voters"`
	Count  int            `json:"count"`
}
