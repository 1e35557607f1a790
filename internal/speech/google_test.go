package speech

import (
	"context"
	"errors"
	"testing"

	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/lshigami/SigmaLearn/config"
	"github.com/lshigami/SigmaLearn/internal/assistant"
)

type fakeClient struct {
	sizes   []int
	replies []string
}

func (f *fakeClient) Recognize(_ context.Context, req *speechpb.RecognizeRequest, _ ...gax.CallOption) (*speechpb.RecognizeResponse, error) {
	f.sizes = append(f.sizes, len(req.GetAudio().GetContent()))
	if req.GetConfig().GetLanguageCode() != "en-GB" {
		return nil, errors.New("unexpected language")
	}
	text := f.replies[len(f.sizes)-1]
	return &speechpb.RecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{
			{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: text}}},
			{Alternatives: nil},
		},
	}, nil
}

func TestDisabledServiceHasNoFactory(t *testing.T) {
	s, err := NewService(&config.Config{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if s.Factory() != nil {
		t.Fatalf("disabled service returned a factory")
	}
	if assistant.NewDictation(s.Factory(), nil).Available() {
		t.Fatalf("dictation available without speech")
	}
}

func TestRecognizerAccumulatesAudio(t *testing.T) {
	fc := &fakeClient{replies: []string{"what is", "what is gravity"}}
	s := newServiceWithClient(fc, "en-GB")

	var submitted []string
	d := assistant.NewDictation(s.Factory(), func(text string) { submitted = append(submitted, text) })
	ctx := context.Background()
	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := d.Feed(ctx, []byte("aaa")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if d.Transcript() != "what is" {
		t.Fatalf("interim transcript=%q", d.Transcript())
	}
	if err := d.Feed(ctx, []byte("bb")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(fc.sizes) != 2 || fc.sizes[0] != 3 || fc.sizes[1] != 5 {
		t.Fatalf("recognized sizes=%v", fc.sizes)
	}
	if err := d.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(submitted) != 1 || submitted[0] != "what is gravity" {
		t.Fatalf("submitted=%v", submitted)
	}
}

func TestFeedAfterStopFails(t *testing.T) {
	g := &GoogleRecognizer{client: &fakeClient{}, languageCode: "en-GB"}
	_ = g.Start(context.Background())
	_ = g.Stop()
	if err := g.Feed(context.Background(), []byte("x")); !errors.Is(err, assistant.ErrNotListening) {
		t.Fatalf("err=%v", err)
	}
}
