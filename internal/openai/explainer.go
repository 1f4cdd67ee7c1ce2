package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrExplainDisabled is returned when no API key was configured.
var ErrExplainDisabled = errors.New("explanations are disabled: no OpenAI API key configured")

type Explainer struct {
	cli     oa.Client
	enabled bool
}

func NewExplainer(apiKey string) *Explainer {
	if strings.TrimSpace(apiKey) == "" {
		return &Explainer{}
	}
	client := oa.NewClient(option.WithAPIKey(apiKey))
	return &Explainer{cli: client, enabled: true}
}

func (e *Explainer) Enabled() bool { return e.enabled }

const explainSystemPrompt = `You explain prediction market positions to beginners. A "Yes" share costs its price (between 0.01 and 0.99), which is the market's implied probability, and settles at 1.00 if the event happens and 0 otherwise.

You will receive the inputs and computed payoff table of one position. Explain in plain language:

**What you bought:**
[shares, price, implied probability]

**If you are right / wrong:**
[payout, profit and loss after fees]

**Breakeven:**
[what probability you need to believe in for this to be worth it, with and without fees]

Guidelines:
- Use only the numbers given; do not recompute or invent figures
- No investment advice, no price predictions
- Keep it under 150 words`

// Explain turns a formatted result table into a short explanation.
func (e *Explainer) Explain(ctx context.Context, table string) (string, error) {
	if !e.enabled {
		return "", ErrExplainDisabled
	}
	resp, err := e.cli.Chat.Completions.New(ctx, oa.ChatCompletionNewParams{
		Model: "gpt-4",
		Messages: []oa.ChatCompletionMessageParamUnion{
			oa.SystemMessage(explainSystemPrompt),
			oa.UserMessage("Explain this position:\n" + table),
		},
		MaxTokens: oa.Int(500),
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
