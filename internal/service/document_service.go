package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lshigami/SigmaLearn/config"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/model"
	"github.com/lshigami/SigmaLearn/internal/quiz"
	"github.com/rs/zerolog/log"
)

type UploadStatus string

const (
	UploadIdle      UploadStatus = "idle"
	UploadUploading UploadStatus = "uploading"
	UploadRetrying  UploadStatus = "retrying"
	UploadComplete  UploadStatus = "complete"
	UploadError     UploadStatus = "error"
)

// DocumentTopic is the topic recorded for quizzes generated from a file.
const DocumentTopic = "PDF Upload"

// DocumentService turns an uploaded PDF into a quiz on the document slot.
type DocumentService interface {
	// Upload validates the file and starts generation in the background.
	Upload(ws *Workspace, fileName string, data []byte, form dto.UploadDocumentForm) (dto.UploadStatusDTO, error)
	Status(ws *Workspace) dto.UploadStatusDTO
	Reset(ws *Workspace) dto.UploadStatusDTO
	// Wait blocks until every background upload has finished.
	Wait()
}

type documentService struct {
	source   QuestionSource
	maxBytes int64
	wg       sync.WaitGroup
}

func NewDocumentService(source QuestionSource, cfg *config.Config) DocumentService {
	return newDocumentService(source, cfg.Upload.MaxBytes)
}

func newDocumentService(source QuestionSource, maxBytes int64) *documentService {
	return &documentService{source: source, maxBytes: maxBytes}
}

func (s *documentService) validate(fileName string, data []byte) error {
	if strings.TrimSpace(fileName) == "" || len(data) == 0 {
		return ErrNoFile
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return ErrNotPDF
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return fmt.Errorf("%w (%d bytes, limit %d)", ErrFileTooLarge, len(data), s.maxBytes)
	}
	return nil
}

func (s *documentService) Upload(ws *Workspace, fileName string, data []byte, form dto.UploadDocumentForm) (dto.UploadStatusDTO, error) {
	fileName = filepath.Base(strings.TrimSpace(fileName))
	if err := s.validate(fileName, data); err != nil {
		return s.Status(ws), err
	}
	count := form.NumQuestions
	if count == 0 {
		count = DefaultQuestionCount
	}
	if count < MinQuestions || count > MaxQuestions {
		return s.Status(ws), fmt.Errorf("%w: question count must be between %d and %d", ErrInvalidInput, MinQuestions, MaxQuestions)
	}
	difficulty := strings.ToLower(form.Difficulty)
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	if !model.ValidDifficulty(difficulty) {
		return s.Status(ws), fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, form.Difficulty)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ws.mu.Lock()
	if ws.upload.cancel != nil {
		ws.upload.cancel()
	}
	gen := ws.bump(featureDocument)
	ws.docQuiz.loading = true
	ws.docQuiz.errMsg = ""
	ws.upload = uploadState{
		id:       uuid.NewString(),
		status:   UploadUploading,
		fileName: fileName,
		cancel:   cancel,
	}
	status := uploadView(&ws.upload)
	ws.mu.Unlock()

	log.Info().Str("client_id", ws.id).Str("upload_id", status.ID).Str("file", fileName).Int("bytes", len(data)).Msg("Document upload started")

	doc := backend.Document{Name: fileName, Data: data}
	settings := QuizSettings{Topic: DocumentTopic, SubTopic: fileName, Count: count, Difficulty: difficulty}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		s.run(ctx, ws, gen, doc, settings)
	}()
	return status, nil
}

func (s *documentService) run(ctx context.Context, ws *Workspace, gen uint64, doc backend.Document, settings QuizSettings) {
	hooks := backend.UploadHooks{
		OnProgress: func(percent int) {
			ws.mu.Lock()
			defer ws.mu.Unlock()
			if ws.current(featureDocument, gen) && percent > ws.upload.progress {
				ws.upload.progress = percent
			}
		},
		OnRetry: func(attempt, maxAttempts int, err error) {
			ws.mu.Lock()
			defer ws.mu.Unlock()
			if !ws.current(featureDocument, gen) {
				return
			}
			ws.upload.status = UploadRetrying
			ws.upload.attempt = attempt
			ws.upload.maxAttempts = maxAttempts
			ws.upload.message = fmt.Sprintf("%s Retrying (%d/%d)...", backend.UserMessage(err), attempt, maxAttempts)
		},
	}

	questions, err := s.source.GenerateFromDocument(ctx, doc, settings.Count, settings.Difficulty, hooks)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.current(featureDocument, gen) {
		log.Debug().Str("client_id", ws.id).Str("file", doc.Name).Msg("Discarding superseded document upload")
		return
	}
	ws.upload.cancel = nil
	ws.docQuiz.loading = false
	if err != nil {
		log.Warn().Err(err).Str("client_id", ws.id).Str("file", doc.Name).Msg("Document upload failed")
		ws.upload.status = UploadError
		ws.upload.message = backend.UserMessage(err)
		ws.docQuiz.errMsg = ws.upload.message
		return
	}
	if len(questions) == 0 {
		ws.upload.status = UploadError
		ws.upload.message = "No questions could be generated from this document."
		ws.docQuiz.errMsg = ws.upload.message
		return
	}

	slot := &ws.docQuiz
	slot.session.Reset()
	setup := quiz.Setup{Topic: settings.Topic, SubTopic: settings.SubTopic, Difficulty: settings.Difficulty}
	if err := slot.session.Begin(setup, questions); err != nil {
		ws.upload.status = UploadError
		ws.upload.message = err.Error()
		return
	}
	slot.settings = settings
	slot.attemptID = ""
	ws.upload.status = UploadComplete
	ws.upload.progress = 100
	ws.upload.message = fmt.Sprintf("Generated %d questions from %s.", len(questions), doc.Name)
	log.Info().Str("client_id", ws.id).Str("file", doc.Name).Int("questions", len(questions)).Msg("Document quiz started")
}

func (s *documentService) Status(ws *Workspace) dto.UploadStatusDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return uploadView(&ws.upload)
}

func (s *documentService) Reset(ws *Workspace) dto.UploadStatusDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.resetQuiz(QuizDocument)
	return uploadView(&ws.upload)
}

func (s *documentService) Wait() { s.wg.Wait() }

func uploadView(u *uploadState) dto.UploadStatusDTO {
	return dto.UploadStatusDTO{
		ID:          u.id,
		Status:      string(u.status),
		FileName:    u.fileName,
		Progress:    u.progress,
		Message:     u.message,
		Attempt:     u.attempt,
		MaxAttempts: u.maxAttempts,
	}
}
