// Package findings produces key-findings summaries from cached paper
// abstracts using GPT-4o. The generator is optional: without an API key
// the research report simply carries an empty findings list.
package findings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go"

	"github.com/bull/research-mcp/internal/papers"
)

// DefaultMaxSummaries bounds how many abstracts feed a single request.
const DefaultMaxSummaries = 5

// Generator extracts key findings from paper summaries via a JSON-mode
// chat completion. Rate limit errors (HTTP 429) retry with exponential
// backoff; other errors are permanent.
type Generator struct {
	client       *openai.Client
	maxSummaries int
}

// NewGenerator creates a findings generator. It reads OPENAI_API_KEY from
// the environment and returns an error if not set, so callers can treat
// the generator as absent.
func NewGenerator() (*Generator, error) {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	// openai-go reads OPENAI_API_KEY from the environment
	client := openai.NewClient()

	return &Generator{
		client:       &client,
		maxSummaries: DefaultMaxSummaries,
	}, nil
}

// findingsResponse is the JSON shape requested from the model.
type findingsResponse struct {
	KeyFindings []string `json:"key_findings"`
}

// Generate returns key findings for an ingredient from the given paper
// records. An empty record set yields an empty list without a request.
func (g *Generator) Generate(ctx context.Context, ingredient, focus string, records []papers.Paper) ([]string, error) {
	if len(records) == 0 {
		return []string{}, nil
	}

	var summaries []string
	for i, paper := range records {
		if i >= g.maxSummaries {
			break
		}
		summaries = append(summaries, fmt.Sprintf("- %s: %s", paper.Title, paper.Summary))
	}

	prompt := fmt.Sprintf(`Analyze these paper abstracts about the active ingredient %q (research focus: %s) and extract the key findings.

Abstracts:
%s

Respond in JSON format:
{"key_findings": ["finding 1", "finding 2"]}

Each finding should be one sentence grounded in the abstracts. Do not invent clinical claims.`,
		ingredient, focus, strings.Join(summaries, "\n"))

	var result findingsResponse

	operation := func() error {
		resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Model: openai.ChatModelGPT4o,
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &openai.ResponseFormatJSONObjectParam{
					Type: "json_object",
				},
			},
		})
		if err != nil {
			if isRateLimitError(err) {
				return err // Will retry with backoff
			}
			return backoff.Permanent(err)
		}
		if parseErr := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); parseErr != nil {
			return backoff.Permanent(fmt.Errorf("failed to parse response: %w", parseErr))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	if result.KeyFindings == nil {
		return []string{}, nil
	}
	return result.KeyFindings, nil
}

// isRateLimitError checks if the error is a rate limit error (HTTP 429).
func isRateLimitError(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
