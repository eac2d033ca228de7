package groq

import (
	"context"
	"time"

	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/groq/groqclient"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/pkg/log"
	"github.com/vfg2006/banarsibot-api/pkg/metrics"
)

// ChatModel answers a single user message under a system prompt.
type ChatModel interface {
	Reply(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type GroqService struct {
	model       string
	temperature float64
	Client      groqclient.Client
}

func New(cfg *config.Config, client groqclient.Client) ChatModel {
	return &GroqService{
		model:       cfg.Groq.Model,
		temperature: cfg.Groq.Temperature,
		Client:      client,
	}
}

func (s *GroqService) Reply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	started := time.Now()
	content, err := s.Client.Complete(ctx, groqclient.ChatRequest{
		Model:        s.model,
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
		Temperature:  s.temperature,
	})
	metrics.ExternalCallDuration.WithLabelValues(metrics.ServiceGroq).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues(metrics.ServiceGroq).Inc()
		return "", err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"model":       s.model,
		"reply_chars": len(content),
	}).Debug("groq: completion received")

	return content, nil
}
