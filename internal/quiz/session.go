package quiz

import (
	"slices"

	"github.com/lshigami/SigmaLearn/internal/model"
)

type Phase string

const (
	PhaseConfiguring Phase = "configuring"
	PhaseInProgress  Phase = "in_progress"
	PhaseGraded      Phase = "graded"
)

// Setup describes what a session was generated from.
type Setup struct {
	Topic      string
	SubTopic   string
	Difficulty string
}

// Session is the state of one quiz from configuration to grading. It is not
// safe for concurrent use; callers serialize access.
type Session struct {
	phase     Phase
	setup     Setup
	questions []model.Question
	answers   []string
	current   int
	result    *Result
}

func NewSession() *Session {
	return &Session{phase: PhaseConfiguring}
}

func (s *Session) Phase() Phase       { return s.phase }
func (s *Session) Setup() Setup       { return s.setup }
func (s *Session) CurrentIndex() int  { return s.current }
func (s *Session) QuestionCount() int { return len(s.questions) }

func (s *Session) Questions() []model.Question {
	return slices.Clone(s.questions)
}

// Answers returns the selection for every question, "" when unanswered.
func (s *Session) Answers() []string { return slices.Clone(s.answers) }

// Result returns the graded outcome, or nil before submission.
func (s *Session) Result() *Result {
	if s.result == nil {
		return nil
	}
	r := s.result.clone()
	return &r
}

// Begin moves a configuring session into progress with freshly generated
// questions. An empty list leaves the session in configuring.
func (s *Session) Begin(setup Setup, questions []model.Question) error {
	if s.phase != PhaseConfiguring {
		return ErrWrongPhase
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	s.setup = setup
	s.questions = slices.Clone(questions)
	s.answers = make([]string, len(questions))
	s.current = 0
	s.result = nil
	s.phase = PhaseInProgress
	return nil
}

// SelectAnswer records option for the question at index. Any question may be
// answered or re-answered while the quiz is in progress.
func (s *Session) SelectAnswer(index int, option string) error {
	if s.phase != PhaseInProgress {
		return ErrWrongPhase
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	if !slices.Contains(s.questions[index].Options, option) {
		return ErrUnknownOption
	}
	s.answers[index] = option
	return nil
}

// Advance moves to the next question. It refuses to leave an unanswered
// question and does nothing on the last one.
func (s *Session) Advance() error {
	if s.phase != PhaseInProgress {
		return ErrWrongPhase
	}
	if s.answers[s.current] == "" {
		return ErrUnanswered
	}
	if s.current < len(s.questions)-1 {
		s.current++
	}
	return nil
}

func (s *Session) Retreat() error {
	if s.phase != PhaseInProgress {
		return ErrWrongPhase
	}
	if s.current == 0 {
		return ErrAtFirstQuestion
	}
	s.current--
	return nil
}

// Submit grades the session. It is accepted once, from an answered last
// question.
func (s *Session) Submit() (Result, error) {
	if s.phase != PhaseInProgress {
		return Result{}, ErrWrongPhase
	}
	if s.current != len(s.questions)-1 {
		return Result{}, ErrNotLastQuestion
	}
	if s.answers[s.current] == "" {
		return Result{}, ErrUnanswered
	}
	res := Grade(s.questions, s.answers)
	s.result = &res
	s.phase = PhaseGraded
	return res.clone(), nil
}

// Reset discards everything and returns to configuring.
func (s *Session) Reset() {
	*s = Session{phase: PhaseConfiguring}
}

// Unanswered lists the 1-based numbers of questions with no selection.
func (s *Session) Unanswered() []int {
	var out []int
	for i, a := range s.answers {
		if a == "" {
			out = append(out, i+1)
		}
	}
	return out
}
