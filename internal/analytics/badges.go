package analytics

import "github.com/lshigami/SigmaLearn/internal/model"

type Badge struct {
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// Badges evaluates every achievement against the attempt history.
func Badges(attempts []model.QuizAttempt) []Badge {
	topics := map[string]struct{}{}
	above80, perfect := 0, false
	for _, a := range attempts {
		topics[a.Topic] = struct{}{}
		if a.TotalQuestions > 0 {
			ratio := float64(a.Score) / float64(a.TotalQuestions)
			if ratio > 0.8 {
				above80++
			}
			if a.Score == a.TotalQuestions {
				perfect = true
			}
		}
	}

	return []Badge{
		{Name: "Beginner", Description: "Complete your first quiz", Icon: "🔰", Earned: len(attempts) >= 1},
		{Name: "Explorer", Description: "Try quizzes in 3 different topics", Icon: "🧭", Earned: len(topics) >= 3},
		{Name: "Scholar", Description: "Score above 80% in 5 quizzes", Icon: "🎓", Earned: above80 >= 5},
		{Name: "Expert", Description: "Score 100% in any quiz", Icon: "⭐", Earned: perfect},
		{Name: "Persistent", Description: "Complete 10 quizzes", Icon: "🏆", Earned: len(attempts) >= 10},
	}
}
