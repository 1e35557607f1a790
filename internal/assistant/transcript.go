package assistant

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/lshigami/SigmaLearn/internal/model"
)

var ErrEmptyMessage = errors.New("message is empty")

var greetings = []string{
	"Hi there! I'm your Learning Buddy. What can I help you with today?",
	"Hello! Ready to learn something new? I'm here to help!",
	"Welcome! I'm your AI study partner. What would you like to explore?",
	"Hey there! Need help with homework, mental wellness, or just want to play a game? I'm here!",
}

// RandomGreeting returns one of the opening lines of a fresh conversation.
func RandomGreeting() string {
	return greetings[rand.IntN(len(greetings))]
}

// Transcript is an append-only conversation log. Clear is the only
// operation that removes messages.
type Transcript struct {
	messages []model.ChatMessage
	turns    int
	now      func() time.Time
}

// NewTranscript starts a conversation with greeting as the first assistant
// message. An empty greeting starts an empty transcript.
func NewTranscript(greeting string) *Transcript {
	t := &Transcript{now: time.Now}
	t.Clear(greeting)
	return t
}

// BeginTurn appends a user message and returns the number of turns taken
// before it. Blank text is rejected without touching the log.
func (t *Transcript) BeginTurn(text string, category Category) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyMessage
	}
	t.messages = append(t.messages, model.ChatMessage{
		Role:      model.RoleUser,
		Content:   text,
		Timestamp: t.now(),
		Category:  string(category),
	})
	turn := t.turns
	t.turns++
	return turn, nil
}

func (t *Transcript) AppendReply(content string, category Category) {
	t.messages = append(t.messages, model.ChatMessage{
		Role:      model.RoleAssistant,
		Content:   content,
		Timestamp: t.now(),
		Category:  string(category),
	})
}

// AppendError records a failed turn as an error-flagged assistant message.
func (t *Transcript) AppendError(content string) {
	t.messages = append(t.messages, model.ChatMessage{
		Role:      model.RoleAssistant,
		Content:   content,
		Timestamp: t.now(),
		IsError:   true,
	})
}

func (t *Transcript) Clear(greeting string) {
	t.messages = nil
	t.turns = 0
	if greeting != "" {
		t.messages = append(t.messages, model.ChatMessage{
			Role:      model.RoleAssistant,
			Content:   greeting,
			Timestamp: t.now(),
		})
	}
}

func (t *Transcript) Messages() []model.ChatMessage { return slices.Clone(t.messages) }

func (t *Transcript) Len() int { return len(t.messages) }

func (t *Transcript) Turns() int { return t.turns }
