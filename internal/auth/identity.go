package auth

import (
	"errors"
	"time"

	"github.com/lshigami/SigmaLearn/internal/model"
	"github.com/lshigami/SigmaLearn/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Identity is the capability feature code depends on instead of the identity
// provider itself.
type Identity interface {
	IsSignedIn() bool
	UserID() string
	SignOut() error
}

// Session is the identity of one browser client, backed by the token it
// stored when it signed in. A Session without a token is anonymous.
type Session struct {
	clientID string
	token    *model.ClientToken
	store    repository.ClientTokenRepository
}

// LoadSession resolves the stored token of clientID. Missing, unreadable and
// expired tokens all yield an anonymous session.
func LoadSession(store repository.ClientTokenRepository, clientID string, now time.Time) *Session {
	s := &Session{clientID: clientID, store: store}
	if store == nil || clientID == "" {
		return s
	}
	tok, err := store.FindByClientID(clientID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("client_id", clientID).Msg("Failed to load client token")
		}
		return s
	}
	if tok.Expired(now) {
		log.Debug().Str("client_id", clientID).Msg("Client token expired")
		return s
	}
	s.token = tok
	return s
}

// Anonymous returns a session with no identity.
func Anonymous(clientID string) *Session { return &Session{clientID: clientID} }

func (s *Session) ClientID() string { return s.clientID }

func (s *Session) IsSignedIn() bool { return s != nil && s.token != nil }

func (s *Session) UserID() string {
	if !s.IsSignedIn() {
		return ""
	}
	return s.token.UserID
}

// Token is the bearer token attached to authenticated backend calls.
func (s *Session) Token() string {
	if !s.IsSignedIn() {
		return ""
	}
	return s.token.Token
}

// SignIn stores token for this client, replacing any previous one.
func (s *Session) SignIn(token string, claims Claims) error {
	tok := &model.ClientToken{
		ClientID:  s.clientID,
		UserID:    claims.Subject,
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}
	if s.store != nil {
		if err := s.store.Save(tok); err != nil {
			return err
		}
	}
	s.token = tok
	return nil
}

func (s *Session) SignOut() error {
	if s == nil {
		return nil
	}
	s.token = nil
	if s.store == nil || s.clientID == "" {
		return nil
	}
	return s.store.Delete(s.clientID)
}
