package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/SigmaLearn/internal/auth"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/model"
	"github.com/lshigami/SigmaLearn/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AccountService interface {
	Me(session *auth.Session) dto.AccountDTO
	// SignIn stores the identity-provider token of this client, caches the
	// profile and syncs it to the backend. A failed sync is only logged.
	SignIn(ctx context.Context, ws *Workspace, session *auth.Session, req dto.SignInRequest) (dto.AccountDTO, error)
	SignOut(ws *Workspace, session *auth.Session) (dto.AccountDTO, error)
}

type accountService struct {
	profiles repository.UserProfileRepository
	syncer   UserSyncer
	now      func() time.Time
}

func NewAccountService(profiles repository.UserProfileRepository, syncer UserSyncer) AccountService {
	return &accountService{profiles: profiles, syncer: syncer, now: time.Now}
}

func (s *accountService) Me(session *auth.Session) dto.AccountDTO {
	if !session.IsSignedIn() {
		return dto.AccountDTO{}
	}
	out := dto.AccountDTO{SignedIn: true, UserID: session.UserID()}
	profile, err := s.profiles.FindByExternalID(session.UserID())
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("user_id", session.UserID()).Msg("Failed to load user profile")
		}
		return out
	}
	out.Email = profile.Email
	out.Name = profile.Name
	out.ProfileImage = profile.ProfileImage
	return out
}

func (s *accountService) SignIn(ctx context.Context, ws *Workspace, session *auth.Session, req dto.SignInRequest) (dto.AccountDTO, error) {
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(req.Token), "Bearer "))
	claims, err := auth.ParseClaims(token)
	if err != nil {
		return s.Me(session), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if claims.ExpiresAt != nil && !s.now().Before(*claims.ExpiresAt) {
		return s.Me(session), fmt.Errorf("%w: session token has expired", ErrInvalidInput)
	}
	if err := session.SignIn(token, claims); err != nil {
		log.Error().Err(err).Str("client_id", session.ClientID()).Msg("Failed to store client token")
		return s.Me(session), fmt.Errorf("storing session: %w", err)
	}

	ws.mu.Lock()
	ws.resetAnalytics()
	ws.mu.Unlock()

	profile := &model.UserProfile{
		ExternalID:   claims.Subject,
		Email:        firstNonEmpty(req.Email, claims.Email),
		Name:         firstNonEmpty(req.Name, claims.Name),
		ProfileImage: firstNonEmpty(req.ProfileImage, claims.Picture),
	}
	syncErr := s.syncer.SyncUser(ctx, token, backend.SyncUserRequest{
		ClerkID:      profile.ExternalID,
		Email:        profile.Email,
		Name:         profile.Name,
		ProfileImage: profile.ProfileImage,
	})
	if syncErr != nil {
		log.Warn().Err(syncErr).Str("user_id", claims.Subject).Msg("Failed to sync user with backend")
	} else {
		now := s.now()
		profile.SyncedAt = &now
	}
	if err := s.profiles.Upsert(profile); err != nil {
		log.Error().Err(err).Str("user_id", claims.Subject).Msg("Failed to cache user profile")
	}

	log.Info().Str("client_id", session.ClientID()).Str("user_id", claims.Subject).Msg("Client signed in")
	return s.Me(session), nil
}

func (s *accountService) SignOut(ws *Workspace, session *auth.Session) (dto.AccountDTO, error) {
	userID := session.UserID()
	if err := session.SignOut(); err != nil {
		log.Error().Err(err).Str("client_id", session.ClientID()).Msg("Failed to remove client token")
		return s.Me(session), fmt.Errorf("removing session: %w", err)
	}
	ws.mu.Lock()
	ws.resetAnalytics()
	ws.mu.Unlock()
	log.Info().Str("client_id", session.ClientID()).Str("user_id", userID).Msg("Client signed out")
	return dto.AccountDTO{}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
