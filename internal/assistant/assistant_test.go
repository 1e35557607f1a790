package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/SigmaLearn/internal/model"
)

func TestBeginTurnRejectsBlank(t *testing.T) {
	tr := NewTranscript("hello")
	if _, err := tr.BeginTurn("   \n\t", CategoryGeneral); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err=%v", err)
	}
	if tr.Len() != 1 || tr.Turns() != 0 {
		t.Fatalf("blank text changed transcript: len=%d turns=%d", tr.Len(), tr.Turns())
	}
}

func TestTurnsAndReplies(t *testing.T) {
	tr := NewTranscript("")
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	turn, err := tr.BeginTurn(" what is 2+2? ", CategoryHomework)
	if err != nil || turn != 0 {
		t.Fatalf("turn=%d err=%v", turn, err)
	}
	tr.AppendReply("4", CategoryHomework)
	turn, _ = tr.BeginTurn("thanks", CategoryHomework)
	if turn != 1 {
		t.Fatalf("second turn=%d", turn)
	}
	tr.AppendError("Server error")

	msgs := tr.Messages()
	if len(msgs) != 4 {
		t.Fatalf("len=%d", len(msgs))
	}
	if msgs[0].Role != model.RoleUser || msgs[0].Content != "what is 2+2?" || !msgs[0].Timestamp.Equal(fixed) {
		t.Fatalf("user message=%+v", msgs[0])
	}
	if msgs[1].Role != model.RoleAssistant || msgs[1].Category != "homework" {
		t.Fatalf("reply=%+v", msgs[1])
	}
	if !msgs[3].IsError {
		t.Fatalf("error turn not flagged: %+v", msgs[3])
	}

	tr.Clear("fresh start")
	if tr.Len() != 1 || tr.Turns() != 0 || tr.Messages()[0].Content != "fresh start" {
		t.Fatalf("clear left %+v", tr.Messages())
	}
}

func TestRandomGreetingIsKnown(t *testing.T) {
	g := RandomGreeting()
	for _, known := range greetings {
		if g == known {
			return
		}
	}
	t.Fatalf("unexpected greeting %q", g)
}

func TestInstructionUsesCategoryAndTone(t *testing.T) {
	if got := ToneFor(7); got != "friendly" {
		t.Fatalf("ToneFor(7)=%q", got)
	}
	if !strings.Contains(Instruction(CategoryHomework, 0), "tutor") {
		t.Fatalf("homework framing missing")
	}
	if !strings.Contains(Instruction(CategoryGames, 3), "casual and playful") {
		t.Fatalf("games framing=%q", Instruction(CategoryGames, 3))
	}
	if Instruction(CategoryGeneral, 1) == Instruction(CategoryGeneral, 2) {
		t.Fatalf("tone did not vary with turn")
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory(""); err != nil || c != CategoryGeneral {
		t.Fatalf("empty -> %q, %v", c, err)
	}
	if c, err := ParseCategory(" Mental "); err != nil || c != CategoryMental {
		t.Fatalf("mental -> %q, %v", c, err)
	}
	if _, err := ParseCategory("sports"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err=%v", err)
	}
	if len(SuggestionsFor(CategoryGames)) != 3 {
		t.Fatalf("games suggestions=%v", SuggestionsFor(CategoryGames))
	}
}

type fakeRecognizer struct {
	onResult func(string)
	onEnd    func()
	started  bool
	stopped  bool
	fed      [][]byte
}

func (f *fakeRecognizer) Start(context.Context) error {
	f.started = true
	return nil
}

func (f *fakeRecognizer) OnResult(fn func(string)) { f.onResult = fn }

func (f *fakeRecognizer) OnEnd(fn func()) { f.onEnd = fn }

func (f *fakeRecognizer) Stop() error {
	if f.stopped {
		return nil
	}
	f.stopped = true
	if f.onEnd != nil {
		f.onEnd()
	}
	return nil
}

func (f *fakeRecognizer) Feed(_ context.Context, audio []byte) error {
	f.fed = append(f.fed, audio)
	return nil
}

func newDictation(submitted *[]string) (*Dictation, *[]*fakeRecognizer) {
	var recs []*fakeRecognizer
	d := NewDictation(func() (Recognizer, error) {
		r := &fakeRecognizer{}
		recs = append(recs, r)
		return r, nil
	}, func(text string) {
		*submitted = append(*submitted, text)
	})
	return d, &recs
}

func TestDictationSubmitsOnNaturalEnd(t *testing.T) {
	var submitted []string
	d, recs := newDictation(&submitted)
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r := (*recs)[0]
	if err := d.Feed(context.Background(), []byte{1, 2}); err != nil || len(r.fed) != 1 {
		t.Fatalf("Feed err=%v fed=%d", err, len(r.fed))
	}
	r.onResult("explain")
	r.onResult("explain gravity ")
	if d.Transcript() != "explain gravity " {
		t.Fatalf("transcript=%q", d.Transcript())
	}
	if err := d.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(submitted) != 1 || submitted[0] != "explain gravity" {
		t.Fatalf("submitted=%v", submitted)
	}
	if d.Listening() {
		t.Fatalf("still listening after end")
	}
}

func TestDictationCancelDoesNotSubmit(t *testing.T) {
	var submitted []string
	d, recs := newDictation(&submitted)
	_ = d.Start(context.Background())
	(*recs)[0].onResult("never mind")
	d.Cancel()
	if len(submitted) != 0 {
		t.Fatalf("cancelled dictation submitted %v", submitted)
	}
	if err := d.Finish(); !errors.Is(err, ErrNotListening) {
		t.Fatalf("Finish after cancel err=%v", err)
	}
}

func TestDictationStartStopsPrevious(t *testing.T) {
	var submitted []string
	d, recs := newDictation(&submitted)
	_ = d.Start(context.Background())
	(*recs)[0].onResult("first")
	_ = d.Start(context.Background())
	if !(*recs)[0].stopped {
		t.Fatalf("previous session not stopped")
	}
	// late results from the old session are ignored
	(*recs)[0].onResult("stale")
	(*recs)[1].onResult("second")
	_ = d.Finish()
	if len(submitted) != 1 || submitted[0] != "second" {
		t.Fatalf("submitted=%v", submitted)
	}
}

func TestDictationUnavailable(t *testing.T) {
	d := NewDictation(nil, nil)
	if d.Available() {
		t.Fatalf("nil factory reported available")
	}
	if err := d.Start(context.Background()); !errors.Is(err, ErrSpeechUnavailable) {
		t.Fatalf("err=%v", err)
	}
}

// blockingSynth plays an utterance until its context is cancelled.
type blockingSynth struct {
	started chan string
}

func (b *blockingSynth) Speak(ctx context.Context, text string) error {
	b.started <- text
	<-ctx.Done()
	return ctx.Err()
}

func waitDone(t *testing.T, errc <-chan error, what string) error {
	t.Helper()
	select {
	case err := <-errc:
		return err
	case <-time.After(time.Second):
		t.Fatalf("%s did not return", what)
		return nil
	}
}

func TestNarratorStopInterruptsPlayingUtterance(t *testing.T) {
	synth := &blockingSynth{started: make(chan string, 1)}
	n := NewNarrator(synth)

	errc := make(chan error, 1)
	go func() { errc <- n.Read(context.Background(), "first message") }()
	<-synth.started
	if !n.Speaking() {
		t.Fatalf("not speaking while an utterance plays")
	}

	stopped := make(chan error, 1)
	go func() {
		n.Stop()
		stopped <- nil
	}()
	waitDone(t, stopped, "Stop")
	if err := waitDone(t, errc, "Read"); err != nil {
		t.Fatalf("interrupted Read err=%v", err)
	}
	if n.Speaking() {
		t.Fatalf("still speaking after Stop")
	}
}

func TestNarratorReadCancelsPrevious(t *testing.T) {
	synth := &blockingSynth{started: make(chan string, 2)}
	n := NewNarrator(synth)

	first := make(chan error, 1)
	go func() { first <- n.Read(context.Background(), "one") }()
	if got := <-synth.started; got != "one" {
		t.Fatalf("started %q", got)
	}

	second := make(chan error, 1)
	go func() { second <- n.Read(context.Background(), "two") }()
	if err := waitDone(t, first, "first Read"); err != nil {
		t.Fatalf("first Read err=%v", err)
	}
	if got := <-synth.started; got != "two" {
		t.Fatalf("started %q", got)
	}
	n.Stop()
	if err := waitDone(t, second, "second Read"); err != nil {
		t.Fatalf("second Read err=%v", err)
	}
}

func TestNarratorUnavailableAndBlank(t *testing.T) {
	if err := NewNarrator(nil).Read(context.Background(), "x"); !errors.Is(err, ErrSpeechUnavailable) {
		t.Fatalf("err=%v", err)
	}
	n := NewNarrator(&blockingSynth{started: make(chan string, 1)})
	if err := n.Read(context.Background(), "  "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err=%v", err)
	}
	var none *Narrator
	none.Stop()
}
