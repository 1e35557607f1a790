package service

import (
	"errors"
	"testing"

	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/quiz"
)

var pdfBytes = []byte("%PDF-1.4 test document")

func TestUploadValidation(t *testing.T) {
	source := &fakeSource{}
	svc := newDocumentService(source, 10)
	ws := newTestWorkspace()

	cases := []struct {
		name string
		file string
		data []byte
		want error
	}{
		{"no file", "", nil, ErrNoFile},
		{"empty file", "notes.pdf", nil, ErrNoFile},
		{"not pdf", "notes.docx", []byte("x"), ErrNotPDF},
		{"too large", "notes.pdf", make([]byte, 11), ErrFileTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := svc.Upload(ws, tc.file, tc.data, dto.UploadDocumentForm{})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if status.Status != string(UploadIdle) {
				t.Fatalf("status = %+v", status)
			}
		})
	}
	if source.callCount() != 0 {
		t.Fatalf("source called on invalid upload")
	}
}

func TestUploadRetriesThenStartsQuiz(t *testing.T) {
	var seen []dto.UploadStatusDTO
	ws := newTestWorkspace()
	svc := newDocumentService(nil, 1<<20)
	source := &fakeSource{
		questions: mathQuestions(3),
		docHook: func(h backend.UploadHooks) {
			h.OnProgress(40)
			h.OnRetry(1, 3, errNetwork)
			seen = append(seen, svc.Status(ws))
			h.OnProgress(20)
			h.OnRetry(2, 3, errNetwork)
			seen = append(seen, svc.Status(ws))
			h.OnProgress(90)
		},
	}
	svc.source = source

	status, err := svc.Upload(ws, "chapter1.PDF", pdfBytes, dto.UploadDocumentForm{NumQuestions: 3, Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if status.Status != string(UploadUploading) || status.ID == "" || status.FileName != "chapter1.PDF" {
		t.Fatalf("accepted status = %+v", status)
	}
	svc.Wait()

	if len(seen) != 2 || seen[0].Status != string(UploadRetrying) || seen[1].Attempt != 2 || seen[1].MaxAttempts != 3 {
		t.Fatalf("retry statuses = %+v", seen)
	}
	if seen[1].Progress != 40 {
		t.Fatalf("progress went backwards: %d", seen[1].Progress)
	}

	final := svc.Status(ws)
	if final.Status != string(UploadComplete) || final.Progress != 100 {
		t.Fatalf("final status = %+v", final)
	}
	if source.lastCount != 3 || string(source.lastDoc.Data) != string(pdfBytes) {
		t.Fatalf("upload request count=%d doc=%q", source.lastCount, source.lastDoc.Data)
	}

	ws.mu.Lock()
	phase := ws.docQuiz.session.Phase()
	setup := ws.docQuiz.session.Setup()
	ws.mu.Unlock()
	if phase != quiz.PhaseInProgress || setup.Topic != DocumentTopic || setup.SubTopic != "chapter1.PDF" || setup.Difficulty != "hard" {
		t.Fatalf("document quiz phase=%s setup=%+v", phase, setup)
	}
}

func TestUploadRejectedShowsError(t *testing.T) {
	rejected := &backend.Error{Kind: backend.KindClientRejected, Op: "test", StatusCode: 422, Message: "PDF has no text"}
	svc := newDocumentService(&fakeSource{err: rejected}, 1<<20)
	ws := newTestWorkspace()

	if _, err := svc.Upload(ws, "scan.pdf", pdfBytes, dto.UploadDocumentForm{}); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	svc.Wait()

	status := svc.Status(ws)
	if status.Status != string(UploadError) || status.Message != backend.UserMessage(rejected) {
		t.Fatalf("status = %+v", status)
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.docQuiz.session.Phase() != quiz.PhaseConfiguring || ws.docQuiz.loading {
		t.Fatalf("quiz state changed on failed upload")
	}
}

func TestResetDiscardsInFlightUpload(t *testing.T) {
	source := &fakeSource{questions: mathQuestions(2), started: make(chan struct{}), gate: make(chan struct{})}
	svc := newDocumentService(source, 1<<20)
	ws := newTestWorkspace()

	if _, err := svc.Upload(ws, "old.pdf", pdfBytes, dto.UploadDocumentForm{}); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	<-source.started
	status := svc.Reset(ws)
	close(source.gate)
	svc.Wait()

	if status.Status != string(UploadIdle) {
		t.Fatalf("status after reset = %+v", status)
	}
	if got := svc.Status(ws); got.Status != string(UploadIdle) || got.FileName != "" {
		t.Fatalf("late upload result applied: %+v", got)
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.docQuiz.session.Phase() != quiz.PhaseConfiguring {
		t.Fatalf("late questions started a quiz")
	}
}

func TestDocumentQuizSubmissionRecordsFileName(t *testing.T) {
	store := &fakeStore{}
	source := &fakeSource{questions: mathQuestions(1)}
	docs := newDocumentService(source, 1<<20)
	quizzes, subs := newTestQuizService(source, store)
	ws := newTestWorkspace()

	if _, err := docs.Upload(ws, "biology.pdf", pdfBytes, dto.UploadDocumentForm{}); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	docs.Wait()

	if _, err := quizzes.SelectAnswer(ws, QuizDocument, 0, "0"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	view, err := quizzes.Submit(ws, QuizDocument, signedInUser)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	subs.Wait()

	if view.Kind != string(QuizDocument) || view.Result.Score != 1 {
		t.Fatalf("view = %+v", view)
	}
	saved := store.savedRequests()
	if len(saved) != 1 || saved[0].Topic != DocumentTopic || saved[0].SubTopic != "biology.pdf" || saved[0].PDFContent != "biology.pdf" {
		t.Fatalf("saved = %+v", saved)
	}
	if topic := quizzes.View(ws, QuizTopic); topic.Phase != string(quiz.PhaseConfiguring) {
		t.Fatalf("topic quiz touched by document quiz: %+v", topic)
	}
}
