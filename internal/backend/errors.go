package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Kind classifies a failed backend call. Every kind maps to a distinct
// user-facing message.
type Kind string

const (
	KindUnreachable     Kind = "unreachable"
	KindTimeout         Kind = "timeout"
	KindServerError     Kind = "server_error"
	KindClientRejected  Kind = "client_rejected"
	KindInvalidResponse Kind = "invalid_response_shape"
	KindUnauthenticated Kind = "unauthenticated"
)

type Error struct {
	Kind       Kind
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return "backend error"
	}
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status=%d)", e.StatusCode)
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether the failure is network- or server-class.
func (e *Error) Retryable() bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindUnreachable, KindTimeout, KindServerError:
		return true
	default:
		return false
	}
}

// KindOf returns the Kind of a backend error, or "" for any other error.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func IsUnauthenticated(err error) bool {
	return KindOf(err) == KindUnauthenticated
}

// UserMessage renders err for display. Rejections carry the server's own
// message when one was sent.
func UserMessage(err error) string {
	var be *Error
	if !errors.As(err, &be) {
		return "Something went wrong. Please try again."
	}
	switch be.Kind {
	case KindUnreachable:
		return "Unable to reach the server. Please check your connection."
	case KindTimeout:
		return "The request timed out. Please try again."
	case KindServerError:
		return "Server error. Please try again later or contact support."
	case KindInvalidResponse:
		return "Invalid response format from server."
	case KindUnauthenticated:
		return "Authentication required. Please sign in to continue."
	case KindClientRejected:
		if msg := strings.TrimSpace(be.Message); msg != "" {
			return msg
		}
		return "The request was rejected. Please check your input."
	default:
		return "Something went wrong. Please try again."
	}
}

func transportError(op string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Op: op, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Op: op, Err: err}
	}
	return &Error{Kind: KindUnreachable, Op: op, Err: err}
}

func statusError(op string, status int, raw []byte) *Error {
	msg := errorMessage(raw)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &Error{Kind: KindUnauthenticated, Op: op, StatusCode: status, Message: msg}
	case status >= 500:
		return &Error{Kind: KindServerError, Op: op, StatusCode: status, Message: msg}
	default:
		return &Error{Kind: KindClientRejected, Op: op, StatusCode: status, Message: msg}
	}
}

func shapeError(op string, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidResponse, Op: op, Err: fmt.Errorf(format, args...)}
}

// errorMessage extracts the human readable message from an error body. The
// backend uses "message", "error" or "details" depending on the route.
func errorMessage(raw []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	if s := strings.TrimSpace(env.Message); s != "" {
		return s
	}
	switch v := env.Error.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	case map[string]any:
		if s, ok := v["message"].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return strings.TrimSpace(env.Details)
}
