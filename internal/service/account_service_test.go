package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/SigmaLearn/internal/auth"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/model"
	"gorm.io/gorm"
)

type memoryTokens map[string]*model.ClientToken

func (m memoryTokens) Save(t *model.ClientToken) error {
	m[t.ClientID] = t
	return nil
}

func (m memoryTokens) FindByClientID(id string) (*model.ClientToken, error) {
	if t, ok := m[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m memoryTokens) Delete(id string) error {
	delete(m, id)
	return nil
}

func (m memoryTokens) DeleteExpired(now time.Time) (int64, error) {
	var n int64
	for id, t := range m {
		if t.Expired(now) {
			delete(m, id)
			n++
		}
	}
	return n, nil
}

type memoryProfiles map[string]*model.UserProfile

func (m memoryProfiles) Upsert(p *model.UserProfile) error {
	m[p.ExternalID] = p
	return nil
}

func (m memoryProfiles) FindByExternalID(id string) (*model.UserProfile, error) {
	if p, ok := m[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func dtoSignIn(token, name string) dto.SignInRequest {
	return dto.SignInRequest{Token: token, Name: name}
}

func newTestAccountService(syncer *fakeSyncer) (*accountService, memoryProfiles) {
	profiles := memoryProfiles{}
	svc := NewAccountService(profiles, syncer).(*accountService)
	svc.now = func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }
	return svc, profiles
}

func TestSignInStoresTokenAndSyncs(t *testing.T) {
	syncer := &fakeSyncer{}
	svc, profiles := newTestAccountService(syncer)
	tokens := memoryTokens{}
	session := auth.LoadSession(tokens, "client-1", time.Now())
	ws := newTestWorkspace()

	token := signToken(t, jwt.MapClaims{
		"sub":   "user_42",
		"email": "ada@example.com",
		"exp":   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Unix(),
	})
	account, err := svc.SignIn(context.Background(), ws, session, dtoSignIn("Bearer "+token, "Ada"))
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !account.SignedIn || account.UserID != "user_42" || account.Email != "ada@example.com" || account.Name != "Ada" {
		t.Fatalf("account = %+v", account)
	}
	if session.Token() != token || tokens["client-1"] == nil {
		t.Fatalf("token not stored")
	}
	if len(syncer.requests) != 1 || syncer.requests[0].ClerkID != "user_42" {
		t.Fatalf("sync requests = %+v", syncer.requests)
	}
	if p := profiles["user_42"]; p == nil || p.SyncedAt == nil {
		t.Fatalf("profile = %+v", p)
	}

	if _, err := svc.SignOut(ws, session); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if session.IsSignedIn() || len(tokens) != 0 {
		t.Fatalf("still signed in after sign out")
	}
	if me := svc.Me(session); me.SignedIn {
		t.Fatalf("me = %+v", me)
	}
}

func TestSignInSyncFailureIsNotFatal(t *testing.T) {
	svc, profiles := newTestAccountService(&fakeSyncer{err: errNetwork})
	session := auth.LoadSession(memoryTokens{}, "client-1", time.Now())

	token := signToken(t, jwt.MapClaims{"sub": "user_7"})
	if _, err := svc.SignIn(context.Background(), newTestWorkspace(), session, dtoSignIn(token, "")); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !session.IsSignedIn() {
		t.Fatalf("not signed in")
	}
	if p := profiles["user_7"]; p == nil || p.SyncedAt != nil {
		t.Fatalf("profile = %+v", p)
	}
}

func TestSignInRejectsBadTokens(t *testing.T) {
	svc, _ := newTestAccountService(&fakeSyncer{})
	session := auth.LoadSession(memoryTokens{}, "client-1", time.Now())
	ws := newTestWorkspace()

	expired := signToken(t, jwt.MapClaims{"sub": "user_1", "exp": time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC).Unix()})
	for _, token := range []string{"not-a-jwt", signToken(t, jwt.MapClaims{"email": "x@y"}), expired} {
		if _, err := svc.SignIn(context.Background(), ws, session, dtoSignIn(token, "")); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("SignIn(%q) err = %v", token, err)
		}
	}
	if session.IsSignedIn() {
		t.Fatalf("signed in with a bad token")
	}
}
