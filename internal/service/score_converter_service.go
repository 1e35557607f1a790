package service

import (
	"fmt"
	"math"
)

type ScoreConverterService interface {
	ConvertToPercentage(score, total int) (int, error)
	BadgeText(percentage int) string
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// ConvertToPercentage turns a raw score into a whole percentage of total.
func (s *scoreConverterServiceImpl) ConvertToPercentage(score, total int) (int, error) {
	if total <= 0 {
		return 0, fmt.Errorf("total questions %d must be positive", total)
	}
	if score < 0 || score > total {
		return 0, fmt.Errorf("score %d is out of valid range (0-%d)", score, total)
	}
	return int(math.Round(float64(score) * 100 / float64(total))), nil
}

// BadgeText is the headline shown above a graded quiz.
func (s *scoreConverterServiceImpl) BadgeText(percentage int) string {
	switch {
	case percentage >= 90:
		return "Excellent!"
	case percentage >= 75:
		return "Good Job!"
	case percentage >= 60:
		return "Nice Try!"
	default:
		return "Keep Practicing!"
	}
}
