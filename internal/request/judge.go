package request

type CreateJudgeRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	JudgeGroup string `json:"judge_group" validate:"required,oneof=A B C"`
}
