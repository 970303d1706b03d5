// ABOUTME: OpenAI Responses API client for persona answers and interpretations
// ABOUTME: Plain-text and schema-constrained calls with bounded retry

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// ErrNoOutput means the model call succeeded but produced no output text
var ErrNoOutput = errors.New("no output returned from model")

// DefaultModel is used when the configuration does not name one
const DefaultModel = "gpt-4.1"

// Client wraps the OpenAI Responses API for the gateway's two call shapes:
// free-text persona answers and schema-constrained interpretations.
type Client struct {
	client openai.Client
	model  string
}

// New creates a client using the given API key and model. An empty model
// falls back to DefaultModel.
func New(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Answer sends the user input under the given system instructions and
// returns the model's output text.
func (c *Client) Answer(ctx context.Context, instructions, input string) (string, error) {
	params := responses.ResponseNewParams{
		Model:        c.model,
		Instructions: openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := c.callWithRetry(ctx, params)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		return "", ErrNoOutput
	}
	return text, nil
}

// Structured sends the user input under the given instructions with a
// json_schema output constraint and returns the raw output text. Callers
// decode it with DecodeModelJSON so a model that wraps the JSON in prose
// still parses.
func (c *Client) Structured(ctx context.Context, instructions, input, schemaName string, schema map[string]any) (string, error) {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:   schemaName,
			Schema: schema,
			Strict: openai.Bool(true),
			Type:   "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:        c.model,
		Instructions: openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := c.callWithRetry(ctx, params)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		return "", ErrNoOutput
	}
	return text, nil
}

// callWithRetry retries transient failures with short request-scoped waits.
// These are interactive requests, so the budget is a few seconds, not the
// minute-scale waits a batch pipeline could afford.
func (c *Client) callWithRetry(ctx context.Context, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxRetries = 3
	waitTimes := []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := c.client.Responses.New(ctx, params)
		if err != nil {
			if (isRateLimitError(err) || isServerError(err)) && attempt < maxRetries-1 {
				select {
				case <-time.After(waitTimes[attempt]):
					continue
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return nil, err
		}
		return resp, nil
	}
	return nil, fmt.Errorf("model call failed after %d attempts", maxRetries)
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests")
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "server_error")
}
