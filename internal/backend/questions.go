package backend

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/lshigami/SigmaLearn/internal/model"
)

const (
	opGenerateMCQ = "generate-mcq"
	opProcessPDF  = "process-pdf"
)

// GenerateFromTopic asks the backend for count questions about topic/subTopic.
func (c *Client) GenerateFromTopic(ctx context.Context, topic, subTopic string, count int) ([]model.Question, error) {
	req := generateMCQRequest{
		Topic:             strings.TrimSpace(topic),
		SubTopic:          strings.TrimSpace(subTopic),
		NumberOfQuestions: count,
	}

	var resp questionsResponse
	if err := c.doJSON(ctx, opGenerateMCQ, http.MethodPost, "/api/generate-mcq", "", req, &resp); err != nil {
		return nil, err
	}
	return normalizeQuestions(opGenerateMCQ, resp)
}

// normalizeQuestions checks the response carries a question list and that each
// entry is usable: text present, at least one option, and a correct answer
// that is one of the options.
func normalizeQuestions(op string, resp questionsResponse) ([]model.Question, error) {
	if resp.Questions == nil {
		return nil, shapeError(op, "response has no questions field")
	}
	out := make([]model.Question, 0, len(*resp.Questions))
	for i, q := range *resp.Questions {
		text := strings.TrimSpace(q.Question)
		if text == "" {
			return nil, shapeError(op, "question %d has no text", i)
		}
		options := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			if o = strings.TrimSpace(o); o != "" {
				options = append(options, o)
			}
		}
		if len(options) == 0 {
			return nil, shapeError(op, "question %d has no options", i)
		}
		correct := strings.TrimSpace(q.CorrectAnswer)
		if !slices.Contains(options, correct) {
			return nil, shapeError(op, "question %d: correct answer is not among its options", i)
		}
		out = append(out, model.Question{
			Question:      text,
			Options:       options,
			CorrectAnswer: correct,
		})
	}
	return out, nil
}
