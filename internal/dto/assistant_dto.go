package dto

import "time"

type ChatMessageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsError   bool      `json:"is_error,omitempty"`
	Category  string    `json:"category,omitempty"`
}

type CategoryDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Suggestions []string `json:"suggestions"`
}

type DictationDTO struct {
	Available  bool   `json:"available"`
	Listening  bool   `json:"listening"`
	Transcript string `json:"transcript,omitempty"`
}

type ChatViewDTO struct {
	Category    string           `json:"category"`
	Categories  []CategoryDTO    `json:"categories"`
	Suggestions []string         `json:"suggestions"`
	Messages    []ChatMessageDTO `json:"messages"`
	Loading     bool             `json:"loading"`
	Dictation   DictationDTO     `json:"dictation"`
	CanSpeak    bool             `json:"can_speak"`
	Speaking    bool             `json:"speaking"`
}
