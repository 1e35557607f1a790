package service

import (
	"context"
	"sync"

	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/model"
	"github.com/rs/zerolog/log"
)

// QuizSubmissionService persists graded attempts. Persistence is best effort:
// failures are logged and never reach the graded view.
type QuizSubmissionService interface {
	// Record saves attempt for owner and returns the stored id. It does
	// nothing for an anonymous owner.
	Record(ctx context.Context, owner Principal, attempt model.QuizAttempt) (string, error)
	// RecordAsync runs Record in the background and reports the id to done
	// when the save succeeded.
	RecordAsync(owner Principal, attempt model.QuizAttempt, done func(id string))
	// Wait blocks until every background save has finished.
	Wait()
}

type quizSubmissionService struct {
	store AttemptStore
	wg    sync.WaitGroup
}

func NewQuizSubmissionService(store AttemptStore) QuizSubmissionService {
	return &quizSubmissionService{store: store}
}

type ownerSnapshot struct {
	userID string
	token  string
}

func snapshotOwner(owner Principal) (ownerSnapshot, bool) {
	if owner == nil || !owner.IsSignedIn() || owner.UserID() == "" {
		return ownerSnapshot{}, false
	}
	return ownerSnapshot{userID: owner.UserID(), token: owner.Token()}, true
}

func (s *quizSubmissionService) Record(ctx context.Context, owner Principal, attempt model.QuizAttempt) (string, error) {
	snap, ok := snapshotOwner(owner)
	if !ok {
		log.Info().Str("topic", attempt.Topic).Msg("User not authenticated, quiz attempt not saved")
		return "", nil
	}
	return s.save(ctx, snap, attempt)
}

func (s *quizSubmissionService) RecordAsync(owner Principal, attempt model.QuizAttempt, done func(id string)) {
	snap, ok := snapshotOwner(owner)
	if !ok {
		log.Info().Str("topic", attempt.Topic).Msg("User not authenticated, quiz attempt not saved")
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		id, err := s.save(context.Background(), snap, attempt)
		if err == nil && done != nil {
			done(id)
		}
	}()
}

func (s *quizSubmissionService) Wait() { s.wg.Wait() }

func (s *quizSubmissionService) save(ctx context.Context, owner ownerSnapshot, attempt model.QuizAttempt) (string, error) {
	req := backend.SaveAttemptRequest{
		UserID:         owner.userID,
		Topic:          attempt.Topic,
		SubTopic:       attempt.SubTopic,
		Questions:      attempt.Questions,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		Difficulty:     attempt.Difficulty,
		PDFContent:     attempt.PDFContent,
	}
	id, err := s.store.SaveAttempt(ctx, owner.token, req)
	if err != nil {
		log.Error().Err(err).Str("user_id", owner.userID).Str("topic", attempt.Topic).Msg("Failed to save quiz attempt")
		return "", err
	}
	log.Info().Str("user_id", owner.userID).Str("attempt_id", id).Int("score", attempt.Score).Int("total", attempt.TotalQuestions).Msg("Quiz attempt saved")
	return id, nil
}
