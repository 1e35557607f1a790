package quiz

import "errors"

var (
	ErrWrongPhase      = errors.New("operation not allowed in the current quiz phase")
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrUnknownOption   = errors.New("option is not one of the question's options")
	ErrUnanswered      = errors.New("current question has not been answered")
	ErrAtFirstQuestion = errors.New("already at the first question")
	ErrNotLastQuestion = errors.New("quiz can only be submitted from the last question")
	ErrNoQuestions     = errors.New("no questions were generated")
)
