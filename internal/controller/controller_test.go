package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/SigmaLearn/config"
	"github.com/lshigami/SigmaLearn/internal/auth"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/model"
	"github.com/lshigami/SigmaLearn/internal/quiz"
	"github.com/lshigami/SigmaLearn/internal/service"
	"gorm.io/gorm"
)

type memoryTokens struct {
	tokens map[string]model.ClientToken
}

func (m *memoryTokens) Save(t *model.ClientToken) error {
	m.tokens[t.ClientID] = *t
	return nil
}

func (m *memoryTokens) FindByClientID(id string) (*model.ClientToken, error) {
	t, ok := m.tokens[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (m *memoryTokens) Delete(id string) error {
	delete(m.tokens, id)
	return nil
}

func (m *memoryTokens) DeleteExpired(time.Time) (int64, error) { return 0, nil }

type stubSource struct {
	questions []model.Question
	err       error
}

func (s *stubSource) GenerateFromTopic(context.Context, string, string, int) ([]model.Question, error) {
	return s.questions, s.err
}

func (s *stubSource) GenerateFromDocument(context.Context, backend.Document, int, string, backend.UploadHooks) ([]model.Question, error) {
	return s.questions, s.err
}

type stubStore struct{}

func (stubStore) SaveAttempt(context.Context, string, backend.SaveAttemptRequest) (string, error) {
	return "att_1", nil
}

func (stubStore) ListAttempts(context.Context, string, string) (backend.AttemptList, error) {
	return backend.AttemptList{}, nil
}

func (stubStore) DeleteAttempt(context.Context, string, string) error { return nil }

func twoQuestions() []model.Question {
	return []model.Question{
		{Question: "2+2?", Options: []string{"3", "4", "5"}, CorrectAnswer: "4"},
		{Question: "3*3?", Options: []string{"6", "9", "12"}, CorrectAnswer: "9"},
	}
}

func newTestRouter(source service.QuestionSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Upload: config.Upload{MaxBytes: 64}}

	workspaces := service.NewWorkspaceStore(cfg)
	subs := service.NewQuizSubmissionService(stubStore{})
	quizzes := service.NewQuizService(source, subs, service.NewScoreConverterService())

	r := gin.New()
	r.Use(auth.Middleware(&memoryTokens{tokens: map[string]model.ClientToken{}}, false))
	api := r.Group("/api/v1")
	for _, routes := range []Routes{
		NewQuizController(workspaces, quizzes),
		NewDocumentController(workspaces, service.NewDocumentService(source, cfg), cfg),
		NewAnalyticsController(workspaces, service.NewAnalyticsService(stubStore{})),
		NewShellController(workspaces, service.NewShellService()),
	} {
		routes.RegisterRoutes(api)
	}
	return r
}

type client struct {
	t      *testing.T
	router *gin.Engine
	id     string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.ClientHeader, c.id)
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestQuizFlowOverHTTP(t *testing.T) {
	c := &client{t: t, router: newTestRouter(&stubSource{questions: twoQuestions()}), id: uuid.NewString()}

	w := c.do(http.MethodPost, "/quiz/topic", dto.GenerateQuizRequest{Topic: "Mathematics", SubTopic: "Algebra", Count: 2})
	if w.Code != http.StatusOK {
		t.Fatalf("generate status = %d body=%s", w.Code, w.Body)
	}
	view := decode[dto.QuizViewDTO](t, w)
	if view.Phase != string(quiz.PhaseInProgress) || len(view.Questions) != 2 || view.Questions[0].CorrectAnswer != "" {
		t.Fatalf("view = %+v", view)
	}

	w = c.do(http.MethodPost, "/quiz/topic/next", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("advance unanswered status = %d", w.Code)
	}
	if resp := decode[dto.ErrorResponse](t, w); resp.State == nil {
		t.Fatalf("error without state: %+v", resp)
	}

	zero, one := 0, 1
	if w = c.do(http.MethodPut, "/quiz/topic/answer", dto.SelectAnswerRequest{Index: &zero, Option: "4"}); w.Code != http.StatusOK {
		t.Fatalf("answer status = %d body=%s", w.Code, w.Body)
	}
	if w = c.do(http.MethodPost, "/quiz/topic/next", nil); w.Code != http.StatusOK {
		t.Fatalf("advance status = %d", w.Code)
	}
	if w = c.do(http.MethodPut, "/quiz/topic/answer", dto.SelectAnswerRequest{Index: &one, Option: "6"}); w.Code != http.StatusOK {
		t.Fatalf("answer status = %d", w.Code)
	}

	w = c.do(http.MethodPost, "/quiz/topic/submit", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d body=%s", w.Code, w.Body)
	}
	view = decode[dto.QuizViewDTO](t, w)
	if view.Phase != string(quiz.PhaseGraded) || view.Result == nil || view.Result.Score != 1 || view.Result.Total != 2 {
		t.Fatalf("graded view = %+v", view)
	}
	if view.Result.Questions[1].CorrectAnswer != "9" || view.Result.Questions[1].IsCorrect {
		t.Fatalf("graded questions = %+v", view.Result.Questions)
	}

	other := &client{t: t, router: c.router, id: uuid.NewString()}
	if v := decode[dto.QuizViewDTO](t, other.do(http.MethodGet, "/quiz/topic", nil)); v.Phase != string(quiz.PhaseConfiguring) {
		t.Fatalf("quiz leaked to another client: %+v", v)
	}
}

func TestGenerateFailureKeepsState(t *testing.T) {
	source := &stubSource{err: &backend.Error{Kind: backend.KindUnreachable, Op: "generate"}}
	c := &client{t: t, router: newTestRouter(source), id: uuid.NewString()}

	w := c.do(http.MethodPost, "/quiz/topic", dto.GenerateQuizRequest{Topic: "Mathematics", SubTopic: "Algebra"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decode[dto.ErrorResponse](t, w)
	if resp.Kind != string(backend.KindUnreachable) || resp.Error == "" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestQuizRequestValidation(t *testing.T) {
	c := &client{t: t, router: newTestRouter(&stubSource{questions: twoQuestions()}), id: uuid.NewString()}

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown kind", http.MethodGet, "/quiz/essay", nil, http.StatusNotFound},
		{"missing subtopic", http.MethodPost, "/quiz/topic", map[string]any{"topic": "Mathematics"}, http.StatusBadRequest},
		{"count too high", http.MethodPost, "/quiz/topic", dto.GenerateQuizRequest{Topic: "Mathematics", SubTopic: "Algebra", Count: 50}, http.StatusBadRequest},
		{"generate document", http.MethodPost, "/quiz/document", dto.GenerateQuizRequest{Topic: "Mathematics", SubTopic: "Algebra"}, http.StatusBadRequest},
		{"answer before start", http.MethodPut, "/quiz/topic/answer", map[string]any{"index": 0, "option": "4"}, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := c.do(tc.method, tc.path, tc.body); w.Code != tc.want {
				t.Fatalf("status = %d, want %d body=%s", w.Code, tc.want, w.Body)
			}
		})
	}
}

func TestMiddlewareAssignsClient(t *testing.T) {
	router := newTestRouter(&stubSource{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shell", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if _, err := uuid.Parse(w.Header().Get(auth.ClientHeader)); err != nil {
		t.Fatalf("client header = %q", w.Header().Get(auth.ClientHeader))
	}
	shell := decode[dto.ShellViewDTO](t, w)
	if shell.View != string(service.ViewHome) || len(shell.Menu) == 0 {
		t.Fatalf("shell = %+v", shell)
	}
}

func TestAnalyticsRequiresSignIn(t *testing.T) {
	c := &client{t: t, router: newTestRouter(&stubSource{}), id: uuid.NewString()}

	w := c.do(http.MethodPost, "/analytics/refresh", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if resp := decode[dto.ErrorResponse](t, w); !resp.SignInRequired {
		t.Fatalf("resp = %+v", resp)
	}
	if w = c.do(http.MethodDelete, "/analytics/attempts/a1", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed delete status = %d", w.Code)
	}
}

func TestShellRejectsUnknownView(t *testing.T) {
	c := &client{t: t, router: newTestRouter(&stubSource{}), id: uuid.NewString()}

	if w := c.do(http.MethodPut, "/shell/view", dto.ActivateViewRequest{View: "settings"}); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	w := c.do(http.MethodPut, "/shell/view", dto.ActivateViewRequest{View: "analytics"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if shell := decode[dto.ShellViewDTO](t, w); shell.View != "analytics" || !shell.SignInRequired {
		t.Fatalf("shell = %+v", shell)
	}
}

func uploadRequest(t *testing.T, clientID, fileName string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		fw.Write(data)
	}
	mw.WriteField("numQuestions", "2")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(auth.ClientHeader, clientID)
	return req
}

func TestUploadDocument(t *testing.T) {
	router := newTestRouter(&stubSource{questions: twoQuestions()})
	id := uuid.NewString()

	cases := []struct {
		name string
		file string
		data []byte
		want int
	}{
		{"missing file", "", nil, http.StatusBadRequest},
		{"not a pdf", "notes.txt", []byte("hello"), http.StatusBadRequest},
		{"too large", "big.pdf", bytes.Repeat([]byte("x"), 65), http.StatusRequestEntityTooLarge},
		{"accepted", "notes.pdf", []byte("%PDF-1.4"), http.StatusAccepted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, uploadRequest(t, id, tc.file, tc.data))
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d body=%s", w.Code, tc.want, w.Body)
			}
		})
	}
}

func TestErrorResponseMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&backend.Error{Kind: backend.KindUnauthenticated, StatusCode: 401}, http.StatusUnauthorized},
		{fmt.Errorf("%w: expired", service.ErrUnauthenticated), http.StatusUnauthorized},
		{&backend.Error{Kind: backend.KindClientRejected, StatusCode: 422}, http.StatusUnprocessableEntity},
		{&backend.Error{Kind: backend.KindClientRejected, StatusCode: 404}, http.StatusBadRequest},
		{&backend.Error{Kind: backend.KindTimeout}, http.StatusGatewayTimeout},
		{&backend.Error{Kind: backend.KindServerError, StatusCode: 500}, http.StatusBadGateway},
		{&backend.Error{Kind: backend.KindInvalidResponse}, http.StatusBadGateway},
		{quiz.ErrUnanswered, http.StatusConflict},
		{service.ErrSuperseded, http.StatusConflict},
		{quiz.ErrNoQuestions, http.StatusBadGateway},
		{service.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{service.ErrSpeechUnavailable, http.StatusNotImplemented},
		{service.ErrEmptyText, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, resp := errorResponse(tc.err)
		if status != tc.want {
			t.Errorf("errorResponse(%v) = %d, want %d", tc.err, status, tc.want)
		}
		if resp.Error == "" {
			t.Errorf("errorResponse(%v) has no message", tc.err)
		}
	}
}
