package service

import (
	"errors"

	"github.com/lshigami/SigmaLearn/internal/assistant"
)

var (
	ErrUnauthenticated      = errors.New("sign in required")
	ErrInvalidInput         = errors.New("invalid input")
	ErrEmptyText            = errors.New("text to summarize is empty")
	ErrNoFile               = errors.New("no file uploaded")
	ErrNotPDF               = errors.New("only PDF files are accepted")
	ErrFileTooLarge         = errors.New("file exceeds the upload size limit")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
	ErrSuperseded           = errors.New("request was superseded by a newer action")
	ErrUnknownView          = errors.New("unknown view")

	ErrEmptyMessage      = assistant.ErrEmptyMessage
	ErrSpeechUnavailable = assistant.ErrSpeechUnavailable
)
