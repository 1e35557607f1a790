package service

import (
	"context"
	"sync"
	"time"

	"github.com/lshigami/SigmaLearn/config"
	"github.com/lshigami/SigmaLearn/internal/analytics"
	"github.com/lshigami/SigmaLearn/internal/assistant"
	"github.com/lshigami/SigmaLearn/internal/quiz"
	"github.com/rs/zerolog/log"
)

type feature int

const (
	featureTopicQuiz feature = iota
	featureDocument
	featureAnalytics
	featureChat
	featureSummarize
	featureCount
)

// quizSlot is one quiz view: the session plus its request status.
type quizSlot struct {
	session  *quiz.Session
	settings QuizSettings
	loading  bool
	errMsg   string
	// attemptID is the id the backend gave the persisted attempt, if any.
	attemptID string
}

func newQuizSlot() quizSlot {
	return quizSlot{session: quiz.NewSession(), settings: DefaultQuizSettings()}
}

type uploadState struct {
	id          string
	status      UploadStatus
	fileName    string
	progress    int
	message     string
	attempt     int
	maxAttempts int
	cancel      context.CancelFunc
}

type summaryState struct {
	text    string
	summary string
	loading bool
	errMsg  string
}

type chatState struct {
	transcript *assistant.Transcript
	category   assistant.Category
	loading    bool
	dictation  *assistant.Dictation
	narrator   *assistant.Narrator
}

type analyticsState struct {
	view           *analytics.View
	loading        bool
	errMsg         string
	signInRequired bool
}

// Workspace holds all client-side state of one browser client. Every field
// is guarded by mu; network calls are made with mu released and their
// results applied only while the generation captured at the start is current.
type Workspace struct {
	mu       sync.Mutex
	id       string
	lastSeen time.Time
	gens     [featureCount]uint64

	shell     ShellState
	topicQuiz quizSlot
	docQuiz   quizSlot
	upload    uploadState
	analytics analyticsState
	chat      chatState
	summary   summaryState
}

func newWorkspace(id string, now time.Time) *Workspace {
	return &Workspace{
		id:        id,
		lastSeen:  now,
		shell:     defaultShellState(),
		topicQuiz: newQuizSlot(),
		docQuiz:   newQuizSlot(),
		upload:    uploadState{status: UploadIdle},
		analytics: analyticsState{view: analytics.NewView()},
		chat: chatState{
			transcript: assistant.NewTranscript(assistant.RandomGreeting()),
			category:   assistant.CategoryGeneral,
		},
	}
}

func (w *Workspace) ID() string { return w.id }

// bump invalidates every in-flight request of f and returns the new
// generation. Callers hold mu.
func (w *Workspace) bump(f feature) uint64 {
	w.gens[f]++
	return w.gens[f]
}

// current reports whether gen is still the live generation of f. Callers
// hold mu.
func (w *Workspace) current(f feature, gen uint64) bool {
	return w.gens[f] == gen
}

func (w *Workspace) slot(kind QuizKind) (*quizSlot, feature) {
	if kind == QuizDocument {
		return &w.docQuiz, featureDocument
	}
	return &w.topicQuiz, featureTopicQuiz
}

// resetQuiz discards the quiz of kind and any result still in flight for it.
// Resetting the document quiz also abandons a running upload. Callers hold mu.
func (w *Workspace) resetQuiz(kind QuizKind) {
	slot, f := w.slot(kind)
	w.bump(f)
	settings := slot.settings
	*slot = newQuizSlot()
	slot.settings = settings
	if kind == QuizDocument {
		if w.upload.cancel != nil {
			w.upload.cancel()
		}
		w.upload = uploadState{status: UploadIdle}
	}
}

func (w *Workspace) resetAnalytics() {
	w.bump(featureAnalytics)
	w.analytics = analyticsState{view: analytics.NewView()}
}

func (w *Workspace) resetSummary() {
	w.bump(featureSummarize)
	w.summary = summaryState{}
}

// resetChat starts a fresh conversation, stops any narration and returns the
// dictation that the caller must cancel once mu is released.
func (w *Workspace) resetChat() *assistant.Dictation {
	w.bump(featureChat)
	w.chat.narrator.Stop()
	w.chat.transcript.Clear(assistant.RandomGreeting())
	w.chat.loading = false
	return w.chat.dictation
}

// WorkspaceStore maps client ids to workspaces and drops idle ones.
type WorkspaceStore struct {
	mu    sync.Mutex
	items map[string]*Workspace
	idle  time.Duration
	now   func() time.Time
}

func NewWorkspaceStore(cfg *config.Config) *WorkspaceStore {
	return newWorkspaceStore(cfg.Workspace.IdleTimeout, time.Now)
}

func newWorkspaceStore(idle time.Duration, now func() time.Time) *WorkspaceStore {
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	return &WorkspaceStore{items: map[string]*Workspace{}, idle: idle, now: now}
}

// Get returns the workspace of clientID, creating it on first use.
func (s *WorkspaceStore) Get(clientID string) *Workspace {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.items[clientID]
	if !ok {
		ws = newWorkspace(clientID, now)
		s.items[clientID] = ws
		log.Debug().Str("client_id", clientID).Msg("Workspace created")
	}
	ws.mu.Lock()
	ws.lastSeen = now
	ws.mu.Unlock()
	return ws
}

func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep removes workspaces idle for longer than the configured timeout and
// returns how many were dropped. Their in-flight results are discarded.
func (s *WorkspaceStore) Sweep() int {
	cutoff := s.now().Add(-s.idle)
	s.mu.Lock()
	var stale []*Workspace
	for id, ws := range s.items {
		ws.mu.Lock()
		idle := ws.lastSeen.Before(cutoff)
		ws.mu.Unlock()
		if idle {
			stale = append(stale, ws)
			delete(s.items, id)
		}
	}
	s.mu.Unlock()

	for _, ws := range stale {
		ws.mu.Lock()
		for f := feature(0); f < featureCount; f++ {
			ws.bump(f)
		}
		if ws.upload.cancel != nil {
			ws.upload.cancel()
		}
		ws.chat.narrator.Stop()
		dictation := ws.chat.dictation
		ws.mu.Unlock()
		if dictation != nil {
			dictation.Cancel()
		}
	}
	if len(stale) > 0 {
		log.Info().Int("count", len(stale)).Msg("Swept idle workspaces")
	}
	return len(stale)
}

// Run sweeps periodically until ctx is done.
func (s *WorkspaceStore) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
