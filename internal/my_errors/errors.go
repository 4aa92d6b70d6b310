package my_errors

import "errors"

// Sentinel my_errors for business logic
var (
	// Validation my_errors
	ErrInvalidCategory = errors.New("unknown vote category")
	ErrInvalidGroup    = errors.New("group must be A, B or C")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyField      = errors.New("required field is empty")

	// Lookup my_errors
	ErrTeamNotFound   = errors.New("team not found")
	ErrVoterNotFound  = errors.New("voter not found")
	ErrJudgeNotFound  = errors.New("judge not found")
	ErrMemberNotFound = errors.New("no team has a member with this nickname")

	// Credential my_errors
	ErrInvalidAuthCode = errors.New("auth code does not match")
	ErrInvalidPassword = errors.New("wrong admin password")
	ErrInvalidToken    = errors.New("invalid token")

	// Voting rule my_errors
	ErrAlreadyVoted        = errors.New("already voted in this category")
	ErrQuotaExceeded       = errors.New("vote quota for this category exhausted")
	ErrDuplicateTargetVote = errors.New("already voted for this team in this category")
	ErrOwnTeamVote         = errors.New("voting for own team is not allowed")
	ErrGroupMismatch       = errors.New("team belongs to a different group")

	// Admin my_errors
	ErrJudgeAlreadyExists = errors.New("judge already exists")
)
