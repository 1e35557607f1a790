package service

import (
	"context"

	"github.com/lshigami/SigmaLearn/internal/auth"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/model"
)

// QuestionSource generates quiz questions remotely.
type QuestionSource interface {
	GenerateFromTopic(ctx context.Context, topic, subTopic string, count int) ([]model.Question, error)
	GenerateFromDocument(ctx context.Context, doc backend.Document, count int, difficulty string, hooks backend.UploadHooks) ([]model.Question, error)
}

// AttemptStore persists and reads graded attempts.
type AttemptStore interface {
	SaveAttempt(ctx context.Context, token string, req backend.SaveAttemptRequest) (string, error)
	ListAttempts(ctx context.Context, token, userID string) (backend.AttemptList, error)
	DeleteAttempt(ctx context.Context, token, attemptID string) error
}

// Responder answers summarize and chat requests.
type Responder interface {
	Summarize(ctx context.Context, text string) (string, error)
	Chat(ctx context.Context, req backend.ChatRequest) (string, error)
}

type UserSyncer interface {
	SyncUser(ctx context.Context, token string, req backend.SyncUserRequest) error
}

// Principal is the caller identity plus the bearer token its calls carry.
type Principal interface {
	auth.Identity
	Token() string
}

var (
	_ QuestionSource = (*backend.Client)(nil)
	_ AttemptStore   = (*backend.Client)(nil)
	_ Responder      = (*backend.Client)(nil)
	_ UserSyncer     = (*backend.Client)(nil)
	_ Principal      = (*auth.Session)(nil)
)
