package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/SigmaLearn/internal/assistant"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/rs/zerolog/log"
)

const chatFailurePrefix = "Sorry, I couldn't answer that. "

type AssistantService interface {
	View(ws *Workspace) dto.ChatViewDTO
	SetCategory(ws *Workspace, category string) (dto.ChatViewDTO, error)
	// Send appends the user turn at once and then the reply, or an
	// error-flagged reply when the responder fails.
	Send(ctx context.Context, ws *Workspace, message, category string) (dto.ChatViewDTO, error)
	Clear(ws *Workspace) dto.ChatViewDTO

	StartDictation(ctx context.Context, ws *Workspace) (dto.ChatViewDTO, error)
	FeedDictation(ctx context.Context, ws *Workspace, audio []byte) (dto.ChatViewDTO, error)
	// FinishDictation ends listening; the heard text is sent as a message.
	FinishDictation(ws *Workspace) (dto.ChatViewDTO, error)
	CancelDictation(ws *Workspace) dto.ChatViewDTO

	// Speak reads text aloud for this client, stopping whatever it was
	// reading before. It returns when the utterance ends or is interrupted.
	Speak(ctx context.Context, ws *Workspace, text string) error
	StopSpeaking(ws *Workspace) dto.ChatViewDTO
}

type assistantService struct {
	responder  Responder
	recognizer assistant.RecognizerFactory
	synth      assistant.Synthesizer
}

// NewAssistantService wires the chat responder and the optional speech
// capabilities. A nil factory or synthesizer leaves that capability off.
func NewAssistantService(responder Responder, recognizer assistant.RecognizerFactory, synth assistant.Synthesizer) AssistantService {
	return &assistantService{
		responder:  responder,
		recognizer: recognizer,
		synth:      synth,
	}
}

func (s *assistantService) View(ws *Workspace) dto.ChatViewDTO {
	ws.mu.Lock()
	dictation := ws.chat.dictation
	out := s.view(&ws.chat)
	ws.mu.Unlock()
	s.fillDictation(&out, dictation)
	return out
}

func (s *assistantService) SetCategory(ws *Workspace, category string) (dto.ChatViewDTO, error) {
	cat, err := assistant.ParseCategory(category)
	if err != nil {
		return s.View(ws), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	ws.mu.Lock()
	ws.chat.category = cat
	ws.mu.Unlock()
	return s.View(ws), nil
}

func (s *assistantService) Send(ctx context.Context, ws *Workspace, message, category string) (dto.ChatViewDTO, error) {
	ws.mu.Lock()
	cat := ws.chat.category
	if category != "" {
		parsed, err := assistant.ParseCategory(category)
		if err != nil {
			ws.mu.Unlock()
			return s.View(ws), fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		cat = parsed
	}
	turn, err := ws.chat.transcript.BeginTurn(message, cat)
	if err != nil {
		ws.mu.Unlock()
		return s.View(ws), err
	}
	gen := ws.gens[featureChat]
	ws.chat.loading = true
	req := backend.ChatRequest{
		Message:          strings.TrimSpace(message),
		Context:          assistant.Instruction(cat, turn),
		Category:         string(cat),
		InteractionCount: turn,
	}
	ws.mu.Unlock()

	reply, err := s.responder.Chat(ctx, req)

	ws.mu.Lock()
	if !ws.current(featureChat, gen) {
		ws.mu.Unlock()
		log.Debug().Str("client_id", ws.id).Msg("Discarding reply for a cleared conversation")
		return s.View(ws), ErrSuperseded
	}
	ws.chat.loading = false
	if err != nil {
		log.Warn().Err(err).Str("client_id", ws.id).Str("category", string(cat)).Msg("Chat request failed")
		ws.chat.transcript.AppendError(chatFailurePrefix + backend.UserMessage(err))
	} else {
		ws.chat.transcript.AppendReply(reply, cat)
	}
	ws.mu.Unlock()
	return s.View(ws), nil
}

func (s *assistantService) Clear(ws *Workspace) dto.ChatViewDTO {
	ws.mu.Lock()
	dictation := ws.resetChat()
	ws.mu.Unlock()
	if dictation != nil {
		dictation.Cancel()
	}
	return s.View(ws)
}

// dictation returns the workspace's dictation, creating it on first use.
// Heard text is submitted as a chat message in the current category.
func (s *assistantService) dictation(ws *Workspace) *assistant.Dictation {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.chat.dictation == nil {
		ws.chat.dictation = assistant.NewDictation(s.recognizer, func(text string) {
			if _, err := s.Send(context.Background(), ws, text, ""); err != nil && !errors.Is(err, ErrSuperseded) {
				log.Warn().Err(err).Str("client_id", ws.id).Msg("Dictated message was not sent")
			}
		})
	}
	return ws.chat.dictation
}

func (s *assistantService) StartDictation(ctx context.Context, ws *Workspace) (dto.ChatViewDTO, error) {
	err := s.dictation(ws).Start(ctx)
	if err != nil && !errors.Is(err, ErrSpeechUnavailable) {
		log.Warn().Err(err).Str("client_id", ws.id).Msg("Failed to start dictation")
	}
	return s.View(ws), err
}

func (s *assistantService) FeedDictation(ctx context.Context, ws *Workspace, audio []byte) (dto.ChatViewDTO, error) {
	d := s.dictation(ws)
	if !d.Available() {
		return s.View(ws), ErrSpeechUnavailable
	}
	err := d.Feed(ctx, audio)
	return s.View(ws), err
}

func (s *assistantService) FinishDictation(ws *Workspace) (dto.ChatViewDTO, error) {
	d := s.dictation(ws)
	if !d.Available() {
		return s.View(ws), ErrSpeechUnavailable
	}
	err := d.Finish()
	return s.View(ws), err
}

func (s *assistantService) CancelDictation(ws *Workspace) dto.ChatViewDTO {
	s.dictation(ws).Cancel()
	return s.View(ws)
}

// narrator returns the workspace's narrator, creating it on first use.
func (s *assistantService) narrator(ws *Workspace) *assistant.Narrator {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.chat.narrator == nil {
		ws.chat.narrator = assistant.NewNarrator(s.synth)
	}
	return ws.chat.narrator
}

func (s *assistantService) Speak(ctx context.Context, ws *Workspace, text string) error {
	return s.narrator(ws).Read(ctx, text)
}

func (s *assistantService) StopSpeaking(ws *Workspace) dto.ChatViewDTO {
	s.narrator(ws).Stop()
	return s.View(ws)
}

// view renders st. Callers hold the workspace lock.
func (s *assistantService) view(st *chatState) dto.ChatViewDTO {
	out := dto.ChatViewDTO{
		Category:    string(st.category),
		Suggestions: assistant.SuggestionsFor(st.category),
		Loading:     st.loading,
		CanSpeak:    s.synth != nil,
		Speaking:    st.narrator.Speaking(),
	}
	if err := copier.Copy(&out.Categories, &assistant.Categories); err != nil {
		log.Error().Err(err).Msg("Failed to copy categories to view")
	}
	messages := st.transcript.Messages()
	if err := copier.Copy(&out.Messages, &messages); err != nil {
		log.Error().Err(err).Msg("Failed to copy messages to view")
	}
	return out
}

// fillDictation reads the dictation state, which has its own lock, after
// the workspace lock is released.
func (s *assistantService) fillDictation(out *dto.ChatViewDTO, d *assistant.Dictation) {
	out.Dictation.Available = s.recognizer != nil
	if d == nil {
		return
	}
	out.Dictation.Listening = d.Listening()
	out.Dictation.Transcript = d.Transcript()
}
