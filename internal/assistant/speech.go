package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrSpeechUnavailable = errors.New("speech capability is not available")
	ErrNotListening      = errors.New("no dictation session is active")
)

// Recognizer is a continuous speech recognition session. OnResult receives
// the whole transcript heard so far; OnEnd fires once when the session stops.
type Recognizer interface {
	Start(ctx context.Context) error
	Stop() error
	OnResult(func(transcript string))
	OnEnd(func())
}

// AudioSink is implemented by recognizers that are fed audio by the caller
// rather than capturing it themselves.
type AudioSink interface {
	Feed(ctx context.Context, audio []byte) error
}

// RecognizerFactory opens a new recognition session.
type RecognizerFactory func() (Recognizer, error)

// Dictation drives at most one recognition session at a time. When a session
// ends on its own or through Finish, the accumulated transcript is handed to
// submit unless the user cancelled listening.
type Dictation struct {
	mu        sync.Mutex
	factory   RecognizerFactory
	submit    func(text string)
	active    Recognizer
	session   uint64
	cancelled bool
	text      string
}

// NewDictation returns a Dictation. A nil factory means speech input is not
// supported and every operation reports ErrSpeechUnavailable.
func NewDictation(factory RecognizerFactory, submit func(text string)) *Dictation {
	return &Dictation{factory: factory, submit: submit}
}

func (d *Dictation) Available() bool { return d != nil && d.factory != nil }

func (d *Dictation) Listening() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active != nil
}

// Transcript returns the text heard in the current or last session.
func (d *Dictation) Transcript() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Start opens a new session, stopping any previous one without submitting it.
func (d *Dictation) Start(ctx context.Context) error {
	if !d.Available() {
		return ErrSpeechUnavailable
	}
	d.Cancel()

	rec, err := d.factory()
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.session++
	id := d.session
	d.active = rec
	d.cancelled = false
	d.text = ""
	d.mu.Unlock()

	rec.OnResult(func(transcript string) {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.session == id {
			d.text = transcript
		}
	})
	rec.OnEnd(func() { d.ended(id) })

	if err := rec.Start(ctx); err != nil {
		d.mu.Lock()
		if d.session == id {
			d.active = nil
		}
		d.mu.Unlock()
		return err
	}
	return nil
}

// Feed passes an audio chunk to the active session.
func (d *Dictation) Feed(ctx context.Context, audio []byte) error {
	d.mu.Lock()
	rec := d.active
	d.mu.Unlock()
	if rec == nil {
		return ErrNotListening
	}
	sink, ok := rec.(AudioSink)
	if !ok {
		return ErrSpeechUnavailable
	}
	return sink.Feed(ctx, audio)
}

// Finish stops the active session so that it ends naturally and submits.
func (d *Dictation) Finish() error {
	d.mu.Lock()
	rec := d.active
	d.mu.Unlock()
	if rec == nil {
		return ErrNotListening
	}
	return rec.Stop()
}

// Cancel stops the active session; its transcript is not submitted.
func (d *Dictation) Cancel() {
	d.mu.Lock()
	rec := d.active
	d.cancelled = true
	d.mu.Unlock()
	if rec != nil {
		_ = rec.Stop()
	}
}

func (d *Dictation) ended(id uint64) {
	d.mu.Lock()
	if d.session != id || d.active == nil {
		d.mu.Unlock()
		return
	}
	d.active = nil
	text := strings.TrimSpace(d.text)
	submit := !d.cancelled && text != ""
	if submit {
		d.text = ""
	}
	d.mu.Unlock()

	if submit && d.submit != nil {
		d.submit(text)
	}
}

// Synthesizer speaks text aloud. Speak returns when the utterance ends or
// ctx is cancelled, whichever comes first.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// Narrator reads single messages on request, never on its own, and cancels
// the previous utterance before starting a new one. The lock only guards the
// handle of the utterance in flight; Speak runs without it.
type Narrator struct {
	mu     sync.Mutex
	synth  Synthesizer
	seq    uint64
	cancel context.CancelFunc
}

func NewNarrator(synth Synthesizer) *Narrator { return &Narrator{synth: synth} }

func (n *Narrator) Available() bool { return n != nil && n.synth != nil }

// Speaking reports whether an utterance is in flight.
func (n *Narrator) Speaking() bool {
	if n == nil {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cancel != nil
}

// Read speaks text, interrupting whatever was being read. An utterance cut
// short by a later Read or Stop returns nil.
func (n *Narrator) Read(ctx context.Context, text string) error {
	if !n.Available() {
		return ErrSpeechUnavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	speakCtx, cancel := context.WithCancel(ctx)
	n.mu.Lock()
	prev := n.cancel
	n.seq++
	seq := n.seq
	n.cancel = cancel
	n.mu.Unlock()
	if prev != nil {
		prev()
	}

	err := n.synth.Speak(speakCtx, text)

	n.mu.Lock()
	interrupted := n.seq != seq
	if !interrupted {
		n.cancel = nil
	}
	n.mu.Unlock()
	interrupted = interrupted || (speakCtx.Err() != nil && ctx.Err() == nil)
	cancel()

	if err != nil && interrupted {
		return nil
	}
	return err
}

// Stop cancels the utterance in flight, if any.
func (n *Narrator) Stop() {
	if n == nil {
		return
	}
	n.mu.Lock()
	cancel := n.cancel
	n.cancel = nil
	n.seq++
	n.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
