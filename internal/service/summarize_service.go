package service

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/rs/zerolog/log"
)

type SummarizeService interface {
	View(ws *Workspace) dto.SummaryViewDTO
	// Summarize asks the backend for a summary of text. Blank text is
	// rejected without a call.
	Summarize(ctx context.Context, ws *Workspace, text string) (dto.SummaryViewDTO, error)
	Clear(ws *Workspace) dto.SummaryViewDTO
}

type summarizeService struct {
	responder Responder
}

func NewSummarizeService(responder Responder) SummarizeService {
	return &summarizeService{responder: responder}
}

// TextStats counts words and non-whitespace characters.
func TextStats(text string) (words, chars int) {
	words = len(strings.Fields(text))
	for _, r := range text {
		if !unicode.IsSpace(r) {
			chars++
		}
	}
	return words, chars
}

// AverageWordLength is chars per word rounded to one decimal, 0 without words.
func AverageWordLength(words, chars int) float64 {
	if words == 0 {
		return 0
	}
	return math.Round(float64(chars)/float64(words)*10) / 10
}

func (s *summarizeService) View(ws *Workspace) dto.SummaryViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return summaryView(&ws.summary)
}

func (s *summarizeService) Summarize(ctx context.Context, ws *Workspace, text string) (dto.SummaryViewDTO, error) {
	if strings.TrimSpace(text) == "" {
		return s.View(ws), ErrEmptyText
	}

	ws.mu.Lock()
	gen := ws.bump(featureSummarize)
	ws.summary.text = text
	ws.summary.loading = true
	ws.summary.errMsg = ""
	ws.mu.Unlock()

	summary, err := s.responder.Summarize(ctx, text)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.current(featureSummarize, gen) {
		return summaryView(&ws.summary), ErrSuperseded
	}
	ws.summary.loading = false
	if err != nil {
		log.Warn().Err(err).Str("client_id", ws.id).Msg("Summarize request failed")
		ws.summary.errMsg = backend.UserMessage(err)
		return summaryView(&ws.summary), err
	}
	ws.summary.summary = summary
	return summaryView(&ws.summary), nil
}

func (s *summarizeService) Clear(ws *Workspace) dto.SummaryViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.resetSummary()
	return summaryView(&ws.summary)
}

func summaryView(st *summaryState) dto.SummaryViewDTO {
	words, chars := TextStats(st.text)
	return dto.SummaryViewDTO{
		Text:          st.text,
		Summary:       st.summary,
		Words:         words,
		Chars:         chars,
		AvgWordLength: AverageWordLength(words, chars),
		Loading:       st.loading,
		Error:         st.errMsg,
	}
}
