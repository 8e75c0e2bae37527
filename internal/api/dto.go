// Package api holds the request and response bodies of the HTTP surface.
package api

type CredentialsRequest struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type NewQuestionRequest struct {
	Title   string   `validate:"required" json:"title"`
	Content string   `validate:"required" json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

type NewAnswerRequest struct {
	Content    string `validate:"required" json:"content"`
	QuestionId int64  `validate:"required" json:"question_id"`
}
