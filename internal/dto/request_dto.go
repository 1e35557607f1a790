package dto

// GenerateQuizRequest starts a topic quiz.
type GenerateQuizRequest struct {
	Topic      string `json:"topic" binding:"required"`
	SubTopic   string `json:"sub_topic" binding:"required"`
	Count      int    `json:"count" binding:"omitempty,min=1,max=20"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

type SelectAnswerRequest struct {
	Index  *int   `json:"index" binding:"required,min=0"`
	Option string `json:"option" binding:"required"`
}

// UploadDocumentForm carries the non-file fields of a document upload.
type UploadDocumentForm struct {
	NumQuestions int    `form:"numQuestions" binding:"omitempty,min=1,max=20"`
	Difficulty   string `form:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

type AnalyticsFilterRequest struct {
	Topic    string `json:"topic"`
	SubTopic string `json:"sub_topic"`
}

type SendMessageRequest struct {
	Message  string `json:"message" binding:"required"`
	Category string `json:"category"`
}

type SetCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type SpeakRequest struct {
	Text string `json:"text" binding:"required"`
}

type SummarizeRequest struct {
	Text string `json:"text" binding:"required"`
}

// SignInRequest hands the identity provider's session token to the server.
type SignInRequest struct {
	Token        string `json:"token" binding:"required"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`
}

type ActivateViewRequest struct {
	View string `json:"view" binding:"required"`
}
