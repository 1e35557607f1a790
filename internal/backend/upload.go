package backend

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/lshigami/SigmaLearn/internal/model"
	"github.com/rs/zerolog/log"
)

// transmitShare is the part of the progress range covered by sending bytes.
// The remainder is reported only once the response has been parsed.
const transmitShare = 90

// Document is an uploaded file held in memory so every attempt can resend the
// exact same payload.
type Document struct {
	Name string
	Data []byte
}

type UploadHooks struct {
	// OnProgress receives a non-decreasing percentage in [0, 100].
	OnProgress func(percent int)
	// OnRetry is called before waiting for retry number attempt of max.
	OnRetry func(attempt, max int, err error)
}

// GenerateFromDocument uploads doc to /api/process-pdf and returns the
// generated questions. Network, timeout and 5xx failures are retried up to
// the configured number of times with a fixed delay. Rejections and malformed
// responses fail at once.
func (c *Client) GenerateFromDocument(ctx context.Context, doc Document, count int, difficulty string, hooks UploadHooks) ([]model.Question, error) {
	if len(doc.Data) == 0 {
		return nil, &Error{Kind: KindClientRejected, Op: opProcessPDF, Message: "Please select a PDF file first"}
	}
	payload, contentType, err := encodeDocument(doc, count, difficulty)
	if err != nil {
		return nil, err
	}

	progress := &progressTracker{fn: hooks.OnProgress}
	progress.report(0)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, transportError(opProcessPDF, ctx.Err())
		}

		questions, err := c.uploadOnce(ctx, payload, contentType, progress)
		if err == nil {
			progress.report(100)
			return questions, nil
		}
		lastErr = err

		var be *Error
		if !errors.As(err, &be) || !be.Retryable() || attempt == c.maxRetries {
			break
		}
		retry := attempt + 1
		log.Warn().Err(err).Int("retry", retry).Int("max_retries", c.maxRetries).Str("file", doc.Name).Msg("Document upload failed, retrying")
		if hooks.OnRetry != nil {
			hooks.OnRetry(retry, c.maxRetries, err)
		}
		if err := sleepCtx(ctx, c.retryDelay); err != nil {
			return nil, transportError(opProcessPDF, err)
		}
	}
	return nil, lastErr
}

func (c *Client) uploadOnce(ctx context.Context, payload []byte, contentType string, progress *progressTracker) ([]model.Question, error) {
	ctx2, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	body := &countingReader{
		r:     bytes.NewReader(payload),
		total: int64(len(payload)),
		onRead: func(read, total int64) {
			progress.report(int(read * transmitShare / total))
		},
	}
	req, err := http.NewRequestWithContext(ctx2, http.MethodPost, c.baseURL+"/api/process-pdf", body)
	if err != nil {
		return nil, err
	}
	req.ContentLength = int64(len(payload))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(payload)), nil
	}
	c.setHeaders(req, contentType, "application/json", "")

	var resp questionsResponse
	if err := c.send(req, opProcessPDF, &resp); err != nil {
		return nil, err
	}
	return normalizeQuestions(opProcessPDF, resp)
}

func encodeDocument(doc Document, count int, difficulty string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	name := doc.Name
	if name == "" {
		name = "document.pdf"
	}
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(doc.Data); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("numQuestions", strconv.Itoa(count)); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("difficulty", difficulty); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

type countingReader struct {
	r      io.Reader
	read   int64
	total  int64
	onRead func(read, total int64)
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.read += int64(n)
		if c.onRead != nil && c.total > 0 {
			c.onRead(c.read, c.total)
		}
	}
	return n, err
}

// progressTracker only forwards values above the previous high-water mark,
// so a retried attempt never moves the reported progress backwards.
type progressTracker struct {
	mu   sync.Mutex
	last int
	sent bool
	fn   func(int)
}

func (p *progressTracker) report(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sent && percent <= p.last {
		return
	}
	p.last = percent
	p.sent = true
	if p.fn != nil {
		p.fn(percent)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
