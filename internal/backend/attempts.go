package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/lshigami/SigmaLearn/internal/model"
)

const (
	opSaveAttempt   = "save-quiz-attempt"
	opListAttempts  = "list-quiz-attempts"
	opDeleteAttempt = "delete-quiz-attempt"
)

// SaveAttempt persists a graded attempt and returns the id the backend gave it.
func (c *Client) SaveAttempt(ctx context.Context, token string, req SaveAttemptRequest) (string, error) {
	var resp saveAttemptResponse
	if err := c.doJSON(ctx, opSaveAttempt, http.MethodPost, "/api/save-quiz-attempt", token, req, &resp); err != nil {
		return "", err
	}
	return resp.attemptID(), nil
}

// ListAttempts fetches every attempt owned by userID. An empty userID is an
// unauthenticated condition and no request is made.
func (c *Client) ListAttempts(ctx context.Context, token, userID string) (AttemptList, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return AttemptList{}, &Error{Kind: KindUnauthenticated, Op: opListAttempts, Message: "no signed-in user"}
	}

	var resp attemptsResponse
	path := "/api/quiz-attempts/" + url.PathEscape(userID)
	if err := c.doJSON(ctx, opListAttempts, http.MethodGet, path, token, nil, &resp); err != nil {
		return AttemptList{}, err
	}
	if resp.QuizAttempts == nil {
		return AttemptList{}, shapeError(opListAttempts, "response has no quizAttempts field")
	}

	attempts := make([]model.QuizAttempt, 0, len(*resp.QuizAttempts))
	for _, w := range *resp.QuizAttempts {
		attempts = append(attempts, w.toModel())
	}
	return AttemptList{Attempts: attempts, Statistics: resp.Statistics}, nil
}

// DeleteAttempt removes one attempt. The call requires a bearer token.
func (c *Client) DeleteAttempt(ctx context.Context, token, attemptID string) error {
	if strings.TrimSpace(token) == "" {
		return &Error{Kind: KindUnauthenticated, Op: opDeleteAttempt, Message: "no session token"}
	}
	attemptID = strings.TrimSpace(attemptID)
	if attemptID == "" {
		return &Error{Kind: KindClientRejected, Op: opDeleteAttempt, Message: "attempt id required"}
	}
	path := "/api/quiz-attempts/" + url.PathEscape(attemptID)
	return c.doJSON(ctx, opDeleteAttempt, http.MethodDelete, path, token, nil, nil)
}
