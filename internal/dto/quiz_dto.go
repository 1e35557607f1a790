package dto

// TopicDTO is one entry of the topic catalogue.
type TopicDTO struct {
	Name      string   `json:"name"`
	SubTopics []string `json:"sub_topics"`
}

type CatalogueDTO struct {
	Topics       []TopicDTO `json:"topics"`
	Difficulties []string   `json:"difficulties"`
	MinQuestions int        `json:"min_questions"`
	MaxQuestions int        `json:"max_questions"`
	DefaultCount int        `json:"default_count"`
	DefaultLevel string     `json:"default_difficulty"`
}

type QuestionDTO struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

type GradedQuestionDTO struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	UserAnswer    string   `json:"user_answer"`
	IsCorrect     bool     `json:"is_correct"`
}

type QuizResultDTO struct {
	Score      int                 `json:"score"`
	Total      int                 `json:"total"`
	Percentage int                 `json:"percentage"`
	Badge      string              `json:"badge"`
	Questions  []GradedQuestionDTO `json:"questions"`
}

// QuizViewDTO is the full state of one quiz view. Correct answers are only
// included once the quiz is graded.
type QuizViewDTO struct {
	Kind         string         `json:"kind"`
	Phase        string         `json:"phase"`
	Topic        string         `json:"topic"`
	SubTopic     string         `json:"sub_topic"`
	Difficulty   string         `json:"difficulty"`
	Count        int            `json:"count"`
	Loading      bool           `json:"loading"`
	Error        string         `json:"error,omitempty"`
	CurrentIndex int            `json:"current_index"`
	Questions    []QuestionDTO  `json:"questions"`
	Answers      []string       `json:"answers"`
	Unanswered   []int          `json:"unanswered,omitempty"`
	CanAdvance   bool           `json:"can_advance"`
	CanSubmit    bool           `json:"can_submit"`
	Result       *QuizResultDTO `json:"result,omitempty"`
	AttemptID    string         `json:"attempt_id,omitempty"`
}

// UploadStatusDTO reports the progress of a document upload.
type UploadStatusDTO struct {
	ID          string `json:"id,omitempty"`
	Status      string `json:"status"`
	FileName    string `json:"file_name,omitempty"`
	Progress    int    `json:"progress"`
	Message     string `json:"message,omitempty"`
	Attempt     int    `json:"attempt,omitempty"`
	MaxAttempts int    `json:"max_attempts,omitempty"`
}
