package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lshigami/SigmaLearn/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 4 << 20

type Options struct {
	BaseURL string

	Timeout       time.Duration
	UploadTimeout time.Duration
	MaxRetries    int
	RetryDelay    time.Duration

	HTTPClient *http.Client
}

// Client talks to the remote learning API. Only document uploads retry;
// every other call is a single attempt.
type Client struct {
	baseURL string

	timeout       time.Duration
	uploadTimeout time.Duration
	maxRetries    int
	retryDelay    time.Duration

	httpClient *http.Client
}

func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("baseURL required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	uploadTimeout := opts.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = 60 * time.Second
	}
	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	retryDelay := opts.RetryDelay
	if retryDelay < 0 {
		retryDelay = 0
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	return &Client{
		baseURL:       baseURL,
		timeout:       timeout,
		uploadTimeout: uploadTimeout,
		maxRetries:    maxRetries,
		retryDelay:    retryDelay,
		httpClient:    hc,
	}, nil
}

// NewFromConfig builds the client used by the server. Outgoing requests are
// traced through the otel transport.
func NewFromConfig(cfg *config.Config) (*Client, error) {
	return New(Options{
		BaseURL:       cfg.Backend.BaseURL,
		Timeout:       cfg.Backend.Timeout,
		UploadTimeout: cfg.Upload.Timeout,
		MaxRetries:    cfg.Upload.MaxRetries,
		RetryDelay:    cfg.Upload.RetryDelay,
		HTTPClient:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	})
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) setHeaders(req *http.Request, contentType string, accept string, token string) {
	if strings.TrimSpace(contentType) != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if strings.TrimSpace(accept) != "" {
		req.Header.Set("Accept", accept)
	}
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}
}

func (c *Client) doJSON(ctx context.Context, op string, method string, path string, token string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	ctx2, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx2, method, c.baseURL+path, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return err
	}
	contentType := ""
	if body != nil {
		contentType = "application/json"
	}
	c.setHeaders(req, contentType, "application/json", token)

	return c.send(req, op, out)
}

// send executes req and decodes a 2xx body into out. Transport failures,
// non-2xx statuses and undecodable bodies come back as *Error.
func (c *Client) send(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		return transportError(op, readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(op, resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return shapeError(op, "empty response body")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return shapeError(op, "decode response: %v", err)
	}
	return nil
}
