package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/SigmaLearn/internal/analytics"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/rs/zerolog/log"
)

type AnalyticsService interface {
	View(ws *Workspace) dto.AnalyticsViewDTO
	// Refresh fetches the attempt history of owner. An anonymous owner gets
	// the sign-in prompt and no request is made.
	Refresh(ctx context.Context, ws *Workspace, owner Principal) (dto.AnalyticsViewDTO, error)
	SetTopic(ws *Workspace, topic string) dto.AnalyticsViewDTO
	SetSubTopic(ws *Workspace, subTopic string) (dto.AnalyticsViewDTO, error)
	ResetFilters(ws *Workspace) dto.AnalyticsViewDTO
	// Delete removes one attempt after the user confirmed it and drops it
	// from the local list without refetching the others.
	Delete(ctx context.Context, ws *Workspace, owner Principal, attemptID string, confirmed bool) (dto.AnalyticsViewDTO, error)
}

type analyticsService struct {
	store AttemptStore
}

func NewAnalyticsService(store AttemptStore) AnalyticsService {
	return &analyticsService{store: store}
}

func signedIn(owner Principal) bool {
	return owner != nil && owner.IsSignedIn() && owner.UserID() != ""
}

func (s *analyticsService) View(ws *Workspace) dto.AnalyticsViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return analyticsView(&ws.analytics)
}

func (s *analyticsService) Refresh(ctx context.Context, ws *Workspace, owner Principal) (dto.AnalyticsViewDTO, error) {
	ws.mu.Lock()
	if !signedIn(owner) {
		defer ws.mu.Unlock()
		ws.resetAnalytics()
		ws.analytics.signInRequired = true
		return analyticsView(&ws.analytics), ErrUnauthenticated
	}
	gen := ws.bump(featureAnalytics)
	ws.analytics.loading = true
	ws.analytics.errMsg = ""
	ws.analytics.signInRequired = false
	ws.mu.Unlock()

	list, err := s.store.ListAttempts(ctx, owner.Token(), owner.UserID())

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.current(featureAnalytics, gen) {
		return analyticsView(&ws.analytics), ErrSuperseded
	}
	ws.analytics.loading = false
	if err != nil {
		if backend.IsUnauthenticated(err) {
			ws.analytics.view.Clear()
			ws.analytics.signInRequired = true
			return analyticsView(&ws.analytics), fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		log.Warn().Err(err).Str("user_id", owner.UserID()).Msg("Failed to fetch quiz attempts")
		ws.analytics.errMsg = backend.UserMessage(err)
		return analyticsView(&ws.analytics), err
	}

	ws.analytics.view.Load(list.Attempts)
	log.Info().Str("user_id", owner.UserID()).Int("attempts", len(list.Attempts)).Msg("Quiz attempts loaded")
	return analyticsView(&ws.analytics), nil
}

func (s *analyticsService) SetTopic(ws *Workspace, topic string) dto.AnalyticsViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.analytics.view.SetTopic(strings.TrimSpace(topic))
	return analyticsView(&ws.analytics)
}

func (s *analyticsService) SetSubTopic(ws *Workspace, subTopic string) (dto.AnalyticsViewDTO, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	err := ws.analytics.view.SetSubTopic(strings.TrimSpace(subTopic))
	if errors.Is(err, analytics.ErrTopicRequired) {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return analyticsView(&ws.analytics), err
}

func (s *analyticsService) ResetFilters(ws *Workspace) dto.AnalyticsViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.analytics.view.ResetFilters()
	return analyticsView(&ws.analytics)
}

func (s *analyticsService) Delete(ctx context.Context, ws *Workspace, owner Principal, attemptID string, confirmed bool) (dto.AnalyticsViewDTO, error) {
	attemptID = strings.TrimSpace(attemptID)
	if attemptID == "" {
		return s.View(ws), fmt.Errorf("%w: attempt id is required", ErrInvalidInput)
	}
	if !confirmed {
		return s.View(ws), ErrConfirmationRequired
	}
	if !signedIn(owner) {
		ws.mu.Lock()
		defer ws.mu.Unlock()
		ws.analytics.signInRequired = true
		return analyticsView(&ws.analytics), ErrUnauthenticated
	}

	err := s.store.DeleteAttempt(ctx, owner.Token(), attemptID)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if err != nil {
		if backend.IsUnauthenticated(err) {
			ws.analytics.signInRequired = true
			return analyticsView(&ws.analytics), fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		log.Warn().Err(err).Str("attempt_id", attemptID).Msg("Failed to delete quiz attempt")
		return analyticsView(&ws.analytics), err
	}
	ws.analytics.view.Remove(attemptID)
	log.Info().Str("user_id", owner.UserID()).Str("attempt_id", attemptID).Msg("Quiz attempt deleted")
	return analyticsView(&ws.analytics), nil
}

// analyticsView renders st. Callers hold the workspace lock.
func analyticsView(st *analyticsState) dto.AnalyticsViewDTO {
	v := st.view
	filter := v.Filter()
	out := dto.AnalyticsViewDTO{
		Loading:        st.loading,
		Loaded:         v.Loaded(),
		Error:          st.errMsg,
		SignInRequired: st.signInRequired,
		Topic:          filter.Topic,
		SubTopic:       filter.SubTopic,
		Topics:         v.Topics(),
		SubTopics:      v.SubTopics(),
	}

	visible := v.Visible()
	if err := copier.Copy(&out.Attempts, &visible); err != nil {
		log.Error().Err(err).Msg("Failed to copy attempts to view")
	}
	for i, a := range visible[:len(out.Attempts)] {
		out.Attempts[i].Percentage = analytics.Percentage(a.Score, a.TotalQuestions)
		out.Attempts[i].Band = string(analytics.BandOf(a.Score, a.TotalQuestions))
	}

	stats := v.Stats()
	if err := copier.Copy(&out.Stats, &stats); err != nil {
		log.Error().Err(err).Msg("Failed to copy stats to view")
	}
	badges := analytics.Badges(v.All())
	if err := copier.Copy(&out.Badges, &badges); err != nil {
		log.Error().Err(err).Msg("Failed to copy badges to view")
	}
	return out
}
