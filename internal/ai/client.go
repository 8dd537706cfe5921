package ai

import (
	"context"
	"github.com/myrjola/pitwall/internal/errors"
	"github.com/sashabaranov/go-openai"
	"log/slog"
)

// Gemini's OpenAI compatible endpoint serves the Gemma models used by default.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel   = "gemma-3-27b-it"
)

var ErrEmptyCompletion = errors.NewSentinel("completion has no choices")

// CompletionRequest is a single prompt with its sampling parameters.
type CompletionRequest struct {
	Prompt      string
	Temperature float32
	TopP        float32
}

// Completer generates text for a prompt.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client talks to any OpenAI compatible chat completion API.
type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg Config) *Client {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Complete sends the prompt as a single user message and returns the text of the first choice.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	completion, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{ //nolint:exhaustruct // plain text message
					Role:    openai.ChatMessageRoleUser,
					Content: req.Prompt,
				},
			},
			Temperature: req.Temperature,
			TopP:        req.TopP,
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "create chat completion", slog.String("model", c.model))
	}
	if len(completion.Choices) == 0 {
		return "", errors.Wrap(ErrEmptyCompletion, "read completion", slog.String("model", c.model))
	}
	return completion.Choices[0].Message.Content, nil
}
