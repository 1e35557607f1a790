package quiz

import (
	"slices"

	"github.com/lshigami/SigmaLearn/internal/model"
)

// Result is the immutable outcome of a graded session.
type Result struct {
	Score   int
	Total   int
	Correct []bool
	Graded  []model.GradedQuestion
}

func (r Result) clone() Result {
	r.Correct = slices.Clone(r.Correct)
	r.Graded = slices.Clone(r.Graded)
	for i := range r.Graded {
		r.Graded[i].Options = slices.Clone(r.Graded[i].Options)
	}
	return r
}

// Grade scores answers against the answer key. answers[i] is the option
// chosen for questions[i]; an empty string or a missing entry is unanswered.
func Grade(questions []model.Question, answers []string) Result {
	res := Result{
		Total:   len(questions),
		Correct: make([]bool, len(questions)),
		Graded:  make([]model.GradedQuestion, len(questions)),
	}
	for i, q := range questions {
		var answer string
		if i < len(answers) {
			answer = answers[i]
		}
		ok := answer != "" && answer == q.CorrectAnswer
		if ok {
			res.Score++
		}
		res.Correct[i] = ok
		res.Graded[i] = model.GradedQuestion{
			Question:      q.Question,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    answer,
			IsCorrect:     ok,
		}
	}
	return res
}
