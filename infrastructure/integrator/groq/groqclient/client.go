package groqclient

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"

	"github.com/vfg2006/banarsibot-api/internal/config"
)

var ErrEmptyCompletion = errors.New("groq: completion has no choices")

type ChatRequest struct {
	Model        string
	SystemPrompt string
	UserMessage  string
	Temperature  float64
}

type Client interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// GroqClient talks to Groq through its OpenAI-compatible endpoint.
type GroqClient struct {
	api openai.Client
}

func NewClient(cfg *config.Config, opts ...option.RequestOption) Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.Groq.APIKey),
		option.WithBaseURL(cfg.Groq.BaseURL),
		option.WithMaxRetries(0),
	}
	if cfg.Groq.Timeout > 0 {
		base = append(base, option.WithRequestTimeout(cfg.Groq.Timeout))
	}

	return &GroqClient{api: openai.NewClient(append(base, opts...)...)}
}

func (c *GroqClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserMessage),
		},
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return "", errors.Wrap(err, "groq: chat completion")
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
