package twilio

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/twilio/twilioclient"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/pkg/log"
	"github.com/vfg2006/banarsibot-api/pkg/metrics"
)

// Gateway delivers chat replies to WhatsApp users.
type Gateway interface {
	SendText(ctx context.Context, to, body string) error
}

type TwilioGateway struct {
	from   string
	Client twilioclient.Client
}

func New(cfg *config.Config, client twilioclient.Client) Gateway {
	return &TwilioGateway{
		from:   cfg.Twilio.WhatsAppFrom,
		Client: client,
	}
}

func (g *TwilioGateway) SendText(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "twilio: send aborted")
	}

	started := time.Now()
	sid, err := g.Client.SendMessage(g.from, to, body)
	metrics.ExternalCallDuration.WithLabelValues(metrics.ServiceTwilio).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ExternalCallFailures.WithLabelValues(metrics.ServiceTwilio).Inc()
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"message_sid": sid,
		"to":          to,
	}).Debug("twilio: reply sent")

	return nil
}
