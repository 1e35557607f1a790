package backend

import (
	"time"

	"github.com/lshigami/SigmaLearn/internal/model"
)

type generateMCQRequest struct {
	Topic             string `json:"topic"`
	SubTopic          string `json:"subTopic"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

type questionsResponse struct {
	Questions *[]wireQuestion `json:"questions"`
}

type wireQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// SaveAttemptRequest is the body of POST /api/save-quiz-attempt.
type SaveAttemptRequest struct {
	UserID         string                 `json:"userId,omitempty"`
	Topic          string                 `json:"topic"`
	SubTopic       string                 `json:"subTopic"`
	Questions      []model.GradedQuestion `json:"questions"`
	Score          int                    `json:"score"`
	TotalQuestions int                    `json:"totalQuestions"`
	Difficulty     string                 `json:"difficulty"`
	PDFContent     string                 `json:"pdfContent,omitempty"`
}

type saveAttemptResponse struct {
	ID          string `json:"id"`
	MongoID     string `json:"_id"`
	QuizAttempt *struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
	} `json:"quizAttempt"`
}

func (r saveAttemptResponse) attemptID() string {
	switch {
	case r.ID != "":
		return r.ID
	case r.MongoID != "":
		return r.MongoID
	case r.QuizAttempt != nil && r.QuizAttempt.ID != "":
		return r.QuizAttempt.ID
	case r.QuizAttempt != nil:
		return r.QuizAttempt.MongoID
	default:
		return ""
	}
}

type attemptsResponse struct {
	QuizAttempts *[]wireAttempt `json:"quizAttempts"`
	Statistics   *Statistics    `json:"statistics,omitempty"`
}

// Statistics is the optional server-side aggregate sent with an attempt list.
type Statistics struct {
	TotalAttempts  int     `json:"totalAttempts"`
	TotalQuestions int     `json:"totalQuestions"`
	TotalCorrect   int     `json:"totalCorrect"`
	AverageScore   float64 `json:"averageScore"`
}

type wireAttempt struct {
	ID             string                 `json:"id"`
	MongoID        string                 `json:"_id"`
	UserID         string                 `json:"userId"`
	Topic          string                 `json:"topic"`
	SubTopic       string                 `json:"subTopic"`
	Questions      []model.GradedQuestion `json:"questions"`
	Score          int                    `json:"score"`
	TotalQuestions int                    `json:"totalQuestions"`
	Difficulty     string                 `json:"difficulty"`
	PDFContent     string                 `json:"pdfContent"`
	CreatedAt      time.Time              `json:"createdAt"`
}

func (w wireAttempt) toModel() model.QuizAttempt {
	id := w.ID
	if id == "" {
		id = w.MongoID
	}
	return model.QuizAttempt{
		ID:             id,
		UserID:         w.UserID,
		Topic:          w.Topic,
		SubTopic:       w.SubTopic,
		Questions:      w.Questions,
		Score:          w.Score,
		TotalQuestions: w.TotalQuestions,
		Difficulty:     w.Difficulty,
		PDFContent:     w.PDFContent,
		CreatedAt:      w.CreatedAt,
	}
}

// AttemptList is a fetched attempt set plus whatever aggregate the server sent.
type AttemptList struct {
	Attempts   []model.QuizAttempt
	Statistics *Statistics
}

type summarizeRequest struct {
	Text string `json:"text"`
}

type summarizeResponse struct {
	Summary *string `json:"summary"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message          string `json:"message"`
	Context          string `json:"context"`
	Category         string `json:"category"`
	InteractionCount int    `json:"interactionCount"`
}

type chatResponse struct {
	Response *string `json:"response"`
}

// SyncUserRequest is the body of POST /api/sync-user.
type SyncUserRequest struct {
	ClerkID      string `json:"clerkId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}
