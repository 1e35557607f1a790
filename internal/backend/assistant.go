package backend

import (
	"context"
	"net/http"
)

const (
	opSummarize = "summarize"
	opChat      = "chat"
	opSyncUser  = "sync-user"
)

func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	var resp summarizeResponse
	if err := c.doJSON(ctx, opSummarize, http.MethodPost, "/api/summarize", "", summarizeRequest{Text: text}, &resp); err != nil {
		return "", err
	}
	if resp.Summary == nil {
		return "", shapeError(opSummarize, "response has no summary field")
	}
	return *resp.Summary, nil
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	var resp chatResponse
	if err := c.doJSON(ctx, opChat, http.MethodPost, "/api/chat", "", req, &resp); err != nil {
		return "", err
	}
	if resp.Response == nil {
		return "", shapeError(opChat, "response has no response field")
	}
	return *resp.Response, nil
}

// SyncUser registers the signed-in identity with the backend.
func (c *Client) SyncUser(ctx context.Context, token string, req SyncUserRequest) error {
	return c.doJSON(ctx, opSyncUser, http.MethodPost, "/api/sync-user", token, req, nil)
}
