package answering

import (
	"context"
	"fmt"

	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/groq"
	"github.com/vfg2006/banarsibot-api/pkg/log"
)

// Answerer replies to free-form questions. Like SaleLogger it never fails:
// errors come back as chat text.
type Answerer interface {
	Answer(ctx context.Context, query string) string
}

type Service struct {
	chatModel groq.ChatModel
}

func NewService(chatModel groq.ChatModel) *Service {
	return &Service{chatModel: chatModel}
}

func (s *Service) Answer(ctx context.Context, query string) string {
	reply, err := s.chatModel.Reply(ctx, Persona, query)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("answering: model call failed")
		return fmt.Sprintf(errorReplyFormat, err.Error())
	}

	return reply
}
