package domain

type AnswerId = int64

type NewAnswer struct {
	Content    string     `json:"content"`
	QuestionId QuestionId `json:"question_id"`
}

type Answer struct {
	Id         AnswerId   `json:"id"`
	Content    string     `json:"content"`
	QuestionId QuestionId `json:"question_id"`
}
