package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/model"
	"github.com/lshigami/SigmaLearn/internal/quiz"
	"github.com/rs/zerolog/log"
)

type QuizKind string

const (
	QuizTopic    QuizKind = "topic"
	QuizDocument QuizKind = "document"
)

func ParseQuizKind(s string) (QuizKind, error) {
	switch QuizKind(strings.ToLower(strings.TrimSpace(s))) {
	case QuizTopic:
		return QuizTopic, nil
	case QuizDocument:
		return QuizDocument, nil
	default:
		return "", fmt.Errorf("%w: unknown quiz kind %q", ErrInvalidInput, s)
	}
}

const (
	MinQuestions         = 1
	MaxQuestions         = 20
	DefaultQuestionCount = 5
)

// QuizSettings are the choices made while configuring a quiz.
type QuizSettings struct {
	Topic      string
	SubTopic   string
	Count      int
	Difficulty string
}

func DefaultQuizSettings() QuizSettings {
	return QuizSettings{Count: DefaultQuestionCount, Difficulty: model.DifficultyMedium}
}

type Topic struct {
	Name      string
	SubTopics []string
}

var topics = []Topic{
	{Name: "Mathematics", SubTopics: []string{"Algebra", "Geometry", "Calculus", "Statistics"}},
	{Name: "Science", SubTopics: []string{"Physics", "Chemistry", "Biology", "Earth Science"}},
	{Name: "Programming", SubTopics: []string{"JavaScript", "Python", "Java", "React"}},
	{Name: "History", SubTopics: []string{"World War I", "World War II", "Ancient Rome", "Medieval Period"}},
}

func findTopic(name string) (Topic, bool) {
	for _, t := range topics {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

const noQuestionsMessage = "No questions were generated. Please try a different topic."

type QuizService interface {
	Catalogue() dto.CatalogueDTO
	View(ws *Workspace, kind QuizKind) dto.QuizViewDTO
	// Generate requests a topic quiz. On failure the previous quiz is kept.
	Generate(ctx context.Context, ws *Workspace, req dto.GenerateQuizRequest) (dto.QuizViewDTO, error)
	SelectAnswer(ws *Workspace, kind QuizKind, index int, option string) (dto.QuizViewDTO, error)
	Advance(ws *Workspace, kind QuizKind) (dto.QuizViewDTO, error)
	Retreat(ws *Workspace, kind QuizKind) (dto.QuizViewDTO, error)
	// Submit grades the quiz and hands the attempt to the recorder. The graded
	// view does not wait for persistence.
	Submit(ws *Workspace, kind QuizKind, owner Principal) (dto.QuizViewDTO, error)
	Reset(ws *Workspace, kind QuizKind) dto.QuizViewDTO
}

type quizService struct {
	source         QuestionSource
	submissions    QuizSubmissionService
	scoreConverter ScoreConverterService
}

func NewQuizService(source QuestionSource, submissions QuizSubmissionService, scoreConverter ScoreConverterService) QuizService {
	return &quizService{
		source:         source,
		submissions:    submissions,
		scoreConverter: scoreConverter,
	}
}

func (s *quizService) Catalogue() dto.CatalogueDTO {
	var out dto.CatalogueDTO
	if err := copier.Copy(&out.Topics, &topics); err != nil {
		log.Error().Err(err).Msg("Failed to copy topic catalogue")
	}
	out.Difficulties = []string{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}
	out.MinQuestions = MinQuestions
	out.MaxQuestions = MaxQuestions
	out.DefaultCount = DefaultQuestionCount
	out.DefaultLevel = model.DifficultyMedium
	return out
}

func (s *quizService) View(ws *Workspace, kind QuizKind) dto.QuizViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	slot, _ := ws.slot(kind)
	return s.view(kind, slot)
}

func validateQuizRequest(req dto.GenerateQuizRequest) (QuizSettings, error) {
	settings := DefaultQuizSettings()
	settings.Topic = strings.TrimSpace(req.Topic)
	settings.SubTopic = strings.TrimSpace(req.SubTopic)
	if req.Count != 0 {
		settings.Count = req.Count
	}
	if req.Difficulty != "" {
		settings.Difficulty = strings.ToLower(req.Difficulty)
	}

	topic, ok := findTopic(settings.Topic)
	if !ok {
		return settings, fmt.Errorf("%w: unknown topic %q", ErrInvalidInput, settings.Topic)
	}
	if !slices.Contains(topic.SubTopics, settings.SubTopic) {
		return settings, fmt.Errorf("%w: %q is not a subtopic of %s", ErrInvalidInput, settings.SubTopic, topic.Name)
	}
	if settings.Count < MinQuestions || settings.Count > MaxQuestions {
		return settings, fmt.Errorf("%w: question count must be between %d and %d", ErrInvalidInput, MinQuestions, MaxQuestions)
	}
	if !model.ValidDifficulty(settings.Difficulty) {
		return settings, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, settings.Difficulty)
	}
	return settings, nil
}

func (s *quizService) Generate(ctx context.Context, ws *Workspace, req dto.GenerateQuizRequest) (dto.QuizViewDTO, error) {
	settings, err := validateQuizRequest(req)
	if err != nil {
		return s.View(ws, QuizTopic), err
	}

	ws.mu.Lock()
	slot, f := ws.slot(QuizTopic)
	gen := ws.bump(f)
	slot.loading = true
	slot.errMsg = ""
	ws.mu.Unlock()

	questions, err := s.source.GenerateFromTopic(ctx, settings.Topic, settings.SubTopic, settings.Count)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.current(f, gen) {
		log.Debug().Str("client_id", ws.id).Msg("Discarding superseded quiz generation")
		return s.view(QuizTopic, slot), ErrSuperseded
	}
	slot.loading = false
	if err != nil {
		log.Warn().Err(err).Str("client_id", ws.id).Str("topic", settings.Topic).Msg("Quiz generation failed")
		slot.errMsg = backend.UserMessage(err)
		return s.view(QuizTopic, slot), err
	}
	if len(questions) == 0 {
		slot.errMsg = noQuestionsMessage
		return s.view(QuizTopic, slot), quiz.ErrNoQuestions
	}

	slot.session.Reset()
	setup := quiz.Setup{Topic: settings.Topic, SubTopic: settings.SubTopic, Difficulty: settings.Difficulty}
	if err := slot.session.Begin(setup, questions); err != nil {
		return s.view(QuizTopic, slot), err
	}
	slot.settings = settings
	slot.attemptID = ""
	log.Info().Str("client_id", ws.id).Str("topic", settings.Topic).Str("sub_topic", settings.SubTopic).Int("questions", len(questions)).Msg("Quiz started")
	return s.view(QuizTopic, slot), nil
}

func (s *quizService) SelectAnswer(ws *Workspace, kind QuizKind, index int, option string) (dto.QuizViewDTO, error) {
	return s.apply(ws, kind, func(sess *quiz.Session) error {
		return sess.SelectAnswer(index, option)
	})
}

func (s *quizService) Advance(ws *Workspace, kind QuizKind) (dto.QuizViewDTO, error) {
	return s.apply(ws, kind, (*quiz.Session).Advance)
}

func (s *quizService) Retreat(ws *Workspace, kind QuizKind) (dto.QuizViewDTO, error) {
	return s.apply(ws, kind, (*quiz.Session).Retreat)
}

func (s *quizService) apply(ws *Workspace, kind QuizKind, op func(*quiz.Session) error) (dto.QuizViewDTO, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	slot, _ := ws.slot(kind)
	err := op(slot.session)
	return s.view(kind, slot), err
}

func (s *quizService) Submit(ws *Workspace, kind QuizKind, owner Principal) (dto.QuizViewDTO, error) {
	ws.mu.Lock()
	slot, f := ws.slot(kind)
	res, err := slot.session.Submit()
	if err != nil {
		defer ws.mu.Unlock()
		return s.view(kind, slot), err
	}
	gen := ws.gens[f]
	setup := slot.session.Setup()
	view := s.view(kind, slot)
	ws.mu.Unlock()

	attempt := model.QuizAttempt{
		Topic:          setup.Topic,
		SubTopic:       setup.SubTopic,
		Questions:      res.Graded,
		Score:          res.Score,
		TotalQuestions: res.Total,
		Difficulty:     setup.Difficulty,
	}
	if kind == QuizDocument {
		attempt.PDFContent = setup.SubTopic
	}
	log.Info().Str("client_id", ws.id).Str("kind", string(kind)).Int("score", res.Score).Int("total", res.Total).Msg("Quiz graded")

	s.submissions.RecordAsync(owner, attempt, func(id string) {
		ws.mu.Lock()
		defer ws.mu.Unlock()
		if ws.current(f, gen) {
			slot.attemptID = id
		}
	})
	return view, nil
}

func (s *quizService) Reset(ws *Workspace, kind QuizKind) dto.QuizViewDTO {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.resetQuiz(kind)
	slot, _ := ws.slot(kind)
	return s.view(kind, slot)
}

// view renders slot. Callers hold ws.mu.
func (s *quizService) view(kind QuizKind, slot *quizSlot) dto.QuizViewDTO {
	sess := slot.session
	out := dto.QuizViewDTO{
		Kind:         string(kind),
		Phase:        string(sess.Phase()),
		Topic:        slot.settings.Topic,
		SubTopic:     slot.settings.SubTopic,
		Difficulty:   slot.settings.Difficulty,
		Count:        slot.settings.Count,
		Loading:      slot.loading,
		Error:        slot.errMsg,
		CurrentIndex: sess.CurrentIndex(),
		Answers:      sess.Answers(),
		AttemptID:    slot.attemptID,
	}
	if sess.Phase() != quiz.PhaseConfiguring {
		setup := sess.Setup()
		out.Topic, out.SubTopic, out.Difficulty = setup.Topic, setup.SubTopic, setup.Difficulty
		out.Count = sess.QuestionCount()
	}

	questions := sess.Questions()
	if err := copier.Copy(&out.Questions, &questions); err != nil {
		log.Error().Err(err).Msg("Failed to copy questions to view")
	}
	if sess.Phase() != quiz.PhaseGraded {
		for i := range out.Questions {
			out.Questions[i].CorrectAnswer = ""
		}
	}

	if sess.Phase() == quiz.PhaseInProgress {
		out.Unanswered = sess.Unanswered()
		answered := out.Answers[out.CurrentIndex] != ""
		last := out.CurrentIndex == len(out.Answers)-1
		out.CanAdvance = answered && !last
		out.CanSubmit = answered && last
	}

	if res := sess.Result(); res != nil {
		out.Result = s.result(*res)
	}
	return out
}

func (s *quizService) result(res quiz.Result) *dto.QuizResultDTO {
	out := &dto.QuizResultDTO{Score: res.Score, Total: res.Total}
	pct, err := s.scoreConverter.ConvertToPercentage(res.Score, res.Total)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to convert quiz score")
	}
	out.Percentage = pct
	out.Badge = s.scoreConverter.BadgeText(pct)
	if err := copier.Copy(&out.Questions, &res.Graded); err != nil {
		log.Error().Err(err).Msg("Failed to copy graded questions to view")
	}
	return out
}

// IsQuizGuard reports whether err is a refused quiz transition rather than a
// failure.
func IsQuizGuard(err error) bool {
	for _, target := range []error{
		quiz.ErrWrongPhase, quiz.ErrUnanswered, quiz.ErrAtFirstQuestion,
		quiz.ErrNotLastQuestion, quiz.ErrIndexOutOfRange, quiz.ErrUnknownOption,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
