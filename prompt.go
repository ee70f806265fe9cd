package cloud

import (
	"context"
	"net/http"
)

// PromptMessage is a single turn of the conversation sent for evaluation.
type PromptMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// EvaluatePromptParams is the input to the AI prompt evaluation endpoint.
type EvaluatePromptParams struct {
	Messages  []PromptMessage `json:"messages" validate:"required,min=1,dive"`
	MaxTokens int             `json:"max_tokens,omitempty" validate:"omitempty,gt=0"`
}

// PromptResult is the model's reply.
type PromptResult struct {
	Message string `json:"message"`
}

// EvaluatePrompt sends the conversation to the AI evaluation endpoint and
// returns the predicted message.
func (c *Client) EvaluatePrompt(ctx context.Context, token string, params EvaluatePromptParams) (PromptResult, error) {
	if err := Validate(params); err != nil {
		return PromptResult{}, err
	}

	var res PromptResult
	if err := c.DoAuthenticated(ctx, http.MethodPost, "evaluate_prompt/predict.json", token, &res, WithPayload(params)); err != nil {
		return PromptResult{}, err
	}

	return res, nil
}
