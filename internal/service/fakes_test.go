package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/model"
)

type fakePrincipal struct {
	id    string
	token string
}

func (p fakePrincipal) IsSignedIn() bool { return p.id != "" }
func (p fakePrincipal) UserID() string   { return p.id }
func (p fakePrincipal) SignOut() error   { return nil }
func (p fakePrincipal) Token() string    { return p.token }

var signedInUser = fakePrincipal{id: "user_1", token: "tok"}

// fakeSource serves canned questions. When gate is set every call blocks
// until it is closed, after signalling on started.
type fakeSource struct {
	mu        sync.Mutex
	questions []model.Question
	err       error
	calls     int
	started   chan struct{}
	gate      chan struct{}
	docHook   func(hooks backend.UploadHooks)
	lastDoc   backend.Document
	lastCount int
}

func (f *fakeSource) wait() {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeSource) GenerateFromTopic(_ context.Context, _, _ string, count int) ([]model.Question, error) {
	f.mu.Lock()
	f.calls++
	f.lastCount = count
	f.mu.Unlock()
	f.wait()
	return f.questions, f.err
}

func (f *fakeSource) GenerateFromDocument(_ context.Context, doc backend.Document, count int, _ string, hooks backend.UploadHooks) ([]model.Question, error) {
	f.mu.Lock()
	f.calls++
	f.lastDoc = doc
	f.lastCount = count
	f.mu.Unlock()
	f.wait()
	if f.docHook != nil {
		f.docHook(hooks)
	}
	return f.questions, f.err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeStore struct {
	mu       sync.Mutex
	saved    []backend.SaveAttemptRequest
	saveErr  error
	attempts []model.QuizAttempt
	listErr  error
	lists    int
	deleted  []string
	delErr   error
}

func (f *fakeStore) SaveAttempt(_ context.Context, _ string, req backend.SaveAttemptRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, req)
	return fmt.Sprintf("att_%d", len(f.saved)), nil
}

func (f *fakeStore) ListAttempts(_ context.Context, _, _ string) (backend.AttemptList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return backend.AttemptList{}, f.listErr
	}
	return backend.AttemptList{Attempts: append([]model.QuizAttempt(nil), f.attempts...)}, nil
}

func (f *fakeStore) DeleteAttempt(_ context.Context, _, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) savedRequests() []backend.SaveAttemptRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backend.SaveAttemptRequest(nil), f.saved...)
}

type fakeResponder struct {
	mu       sync.Mutex
	reply    string
	err      error
	requests []backend.ChatRequest
	texts    []string
	started  chan struct{}
	gate     chan struct{}
}

func (f *fakeResponder) Summarize(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	f.texts = append(f.texts, text)
	f.mu.Unlock()
	return f.reply, f.err
}

func (f *fakeResponder) Chat(_ context.Context, req backend.ChatRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	return f.reply, f.err
}

type fakeSyncer struct {
	requests []backend.SyncUserRequest
	err      error
}

func (f *fakeSyncer) SyncUser(_ context.Context, _ string, req backend.SyncUserRequest) error {
	f.requests = append(f.requests, req)
	return f.err
}

func mathQuestions(n int) []model.Question {
	out := make([]model.Question, n)
	for i := range out {
		out[i] = model.Question{
			Question:      fmt.Sprintf("What is %d + %d?", i, i),
			Options:       []string{fmt.Sprint(2 * i), fmt.Sprint(2*i + 1), "none"},
			CorrectAnswer: fmt.Sprint(2 * i),
		}
	}
	return out
}

func newTestWorkspace() *Workspace {
	return newWorkspace("client-1", time.Unix(1_700_000_000, 0))
}

var (
	errNetwork = &backend.Error{Kind: backend.KindUnreachable, Op: "test", Err: errors.New("connection refused")}
	errServer  = &backend.Error{Kind: backend.KindServerError, Op: "test", StatusCode: 500}
	errAuth    = &backend.Error{Kind: backend.KindUnauthenticated, Op: "test", StatusCode: 401}
)
