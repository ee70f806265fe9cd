package cloud

import (
	"context"
	"io"
	"net/http"
)

// CreateFeedbackParams is the input for a feedback submission. Only
// Message is required; everything else is appended to the form only when
// present.
type CreateFeedbackParams struct {
	Email   string
	Message string `validate:"required"`
	Context string

	// Logs is an optional log archive attached to the submission.
	Logs io.Reader
}

// CreateFeedback submits user feedback as a multipart form, optionally
// attaching logs.
func (c *Client) CreateFeedback(ctx context.Context, token string, params CreateFeedbackParams) (Feedback, error) {
	if err := Validate(params); err != nil {
		return Feedback{}, err
	}

	form := NewForm().
		AddField("email", params.Email).
		AddField("feedback", params.Message).
		AddField("context", params.Context).
		AddFile("logs", "logs.zip", params.Logs)

	var fb Feedback
	if err := c.DoAuthenticated(ctx, http.MethodPut, "feedback", token, &fb, WithForm(form)); err != nil {
		return Feedback{}, err
	}

	return fb, nil
}
