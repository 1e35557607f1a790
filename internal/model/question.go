package model

// Question is a generated multiple-choice question. Its identity is its
// position inside a quiz session.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// GradedQuestion is a question together with the learner's answer, as stored
// in a quiz attempt.
type GradedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	UserAnswer    string   `json:"userAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
}
