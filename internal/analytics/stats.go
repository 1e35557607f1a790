package analytics

import (
	"math"

	"github.com/lshigami/SigmaLearn/internal/model"
)

type Stats struct {
	TotalAttempts  int
	TotalQuestions int
	TotalCorrect   int
	// AverageScore is totalCorrect/totalQuestions as a percentage rounded to
	// two decimals, 0 when there are no questions.
	AverageScore float64
}

func Compute(attempts []model.QuizAttempt) Stats {
	var s Stats
	for _, a := range attempts {
		s.TotalAttempts++
		s.TotalQuestions += a.TotalQuestions
		s.TotalCorrect += a.Score
	}
	if s.TotalQuestions > 0 {
		avg := float64(s.TotalCorrect) / float64(s.TotalQuestions) * 100
		s.AverageScore = math.Round(avg*100) / 100
	}
	return s
}

type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// BandOf rates one attempt: at least 70% is high, at least 40% medium.
func BandOf(score, total int) Band {
	if total <= 0 {
		return BandLow
	}
	ratio := float64(score) / float64(total)
	switch {
	case ratio >= 0.7:
		return BandHigh
	case ratio >= 0.4:
		return BandMedium
	default:
		return BandLow
	}
}

// Percentage is score/total rounded to a whole percent, 0 for an empty quiz.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
