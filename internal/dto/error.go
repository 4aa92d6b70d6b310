package dto

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInvalidCredential = "INVALID_CREDENTIAL"
	ErrCodeAlreadyVoted      = "ALREADY_VOTED"
	ErrCodeQuotaExceeded     = "QUOTA_EXCEEDED"
	ErrCodeDuplicateTarget   = "DUPLICATE_TARGET"
	ErrCodeOwnTeam           = "OWN_TEAM"
	ErrCodeGroupMismatch     = "GROUP_MISMATCH"
	ErrCodeJudgeExists       = "JUDGE_EXISTS"
	ErrCodeStorage           = "STORAGE_ERROR"
)
