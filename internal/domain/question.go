package domain

type QuestionId = int64

// NewQuestion is a question as submitted, before an id is assigned.
type NewQuestion struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

type Question struct {
	Id      QuestionId `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Tags    []string   `json:"tags,omitempty"`
}
