package model

import "time"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// QuizAttempt is one completed, scored quiz as persisted by the backend.
// It is write-once; the only mutation is deletion by ID.
type QuizAttempt struct {
	ID             string           `json:"id,omitempty"`
	UserID         string           `json:"userId,omitempty"`
	Topic          string           `json:"topic"`
	SubTopic       string           `json:"subTopic"`
	Questions      []GradedQuestion `json:"questions"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Difficulty     string           `json:"difficulty"`
	PDFContent     string           `json:"pdfContent,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}
