package speech

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/lshigami/SigmaLearn/config"
	"github.com/lshigami/SigmaLearn/internal/assistant"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const recognizeTimeout = 30 * time.Second

type recognizeClient interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
}

// Service owns the Cloud Speech connection shared by all dictation sessions.
type Service struct {
	client       recognizeClient
	close        func() error
	languageCode string
}

// NewService connects to Cloud Speech when speech input is enabled. When it
// is disabled the returned Service has no factory and dictation reports the
// capability as unavailable.
func NewService(cfg *config.Config) (*Service, error) {
	lang := strings.TrimSpace(cfg.Speech.LanguageCode)
	if lang == "" {
		lang = "en-US"
	}
	if !cfg.Speech.Enabled {
		log.Info().Msg("Speech input disabled")
		return &Service{languageCode: lang}, nil
	}

	var opts []option.ClientOption
	if path := strings.TrimSpace(cfg.Speech.CredentialsFile); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}
	c, err := speech.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	log.Info().Str("language", lang).Msg("Speech input enabled")
	return &Service{client: c, close: c.Close, languageCode: lang}, nil
}

func newServiceWithClient(client recognizeClient, languageCode string) *Service {
	return &Service{client: client, languageCode: languageCode}
}

// Factory returns the recognizer constructor used by dictation, or nil when
// speech input is disabled.
func (s *Service) Factory() assistant.RecognizerFactory {
	if s == nil || s.client == nil {
		return nil
	}
	return func() (assistant.Recognizer, error) {
		return &GoogleRecognizer{client: s.client, languageCode: s.languageCode}, nil
	}
}

func (s *Service) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// GoogleRecognizer accumulates pushed audio and re-recognizes the whole
// utterance on every chunk, reporting the transcript heard so far.
type GoogleRecognizer struct {
	client       recognizeClient
	languageCode string

	mu       sync.Mutex
	running  bool
	audio    []byte
	onResult func(string)
	onEnd    func()
}

func (g *GoogleRecognizer) OnResult(fn func(string)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onResult = fn
}

func (g *GoogleRecognizer) OnEnd(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onEnd = fn
}

func (g *GoogleRecognizer) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running = true
	g.audio = nil
	return nil
}

// Stop ends the session. OnEnd fires once, on the first Stop after Start.
func (g *GoogleRecognizer) Stop() error {
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return nil
	}
	g.running = false
	onEnd := g.onEnd
	g.mu.Unlock()

	if onEnd != nil {
		onEnd()
	}
	return nil
}

func (g *GoogleRecognizer) Feed(ctx context.Context, audio []byte) error {
	if len(audio) == 0 {
		return nil
	}
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return assistant.ErrNotListening
	}
	g.audio = append(g.audio, audio...)
	content := append([]byte(nil), g.audio...)
	g.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, recognizeTimeout)
	defer cancel()

	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_WEBM_OPUS,
			SampleRateHertz:            48000,
			LanguageCode:               g.languageCode,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{AudioSource: &speechpb.RecognitionAudio_Content{Content: content}},
	})
	if err != nil {
		return fmt.Errorf("speech recognize: %w", err)
	}

	transcript := joinTranscript(resp)
	g.mu.Lock()
	onResult := g.onResult
	running := g.running
	g.mu.Unlock()
	if running && onResult != nil {
		onResult(transcript)
	}
	return nil
}

func joinTranscript(resp *speechpb.RecognizeResponse) string {
	var parts []string
	for _, r := range resp.GetResults() {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if t := strings.TrimSpace(alts[0].GetTranscript()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
