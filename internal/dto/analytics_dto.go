package dto

import "time"

type AttemptDTO struct {
	ID             string              `json:"id"`
	Topic          string              `json:"topic"`
	SubTopic       string              `json:"sub_topic"`
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"total_questions"`
	Difficulty     string              `json:"difficulty"`
	Percentage     int                 `json:"percentage"`
	Band           string              `json:"band"`
	Questions      []GradedQuestionDTO `json:"questions,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type StatsDTO struct {
	TotalAttempts  int     `json:"total_attempts"`
	TotalQuestions int     `json:"total_questions"`
	TotalCorrect   int     `json:"total_correct"`
	AverageScore   float64 `json:"average_score"`
}

type BadgeDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

type AnalyticsViewDTO struct {
	Loading        bool         `json:"loading"`
	Loaded         bool         `json:"loaded"`
	Error          string       `json:"error,omitempty"`
	SignInRequired bool         `json:"sign_in_required"`
	Topic          string       `json:"topic"`
	SubTopic       string       `json:"sub_topic"`
	Topics         []string     `json:"topics"`
	SubTopics      []string     `json:"sub_topics"`
	Attempts       []AttemptDTO `json:"attempts"`
	Stats          StatsDTO     `json:"stats"`
	Badges         []BadgeDTO   `json:"badges"`
}
