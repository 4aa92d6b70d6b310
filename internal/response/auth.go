package response

import "github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/dto"

type VoterAuthResponse struct {
	Voter   dto.VoterDTO `json:"voter"`
	Message string       `json:"message"`
}

type JudgeAuthResponse struct {
	Judge dto.JudgeDTO `json:"judge"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}
