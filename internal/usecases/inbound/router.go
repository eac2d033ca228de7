package inbound

import (
	"context"
	"strings"

	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/twilio"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/internal/usecases/answering"
	"github.com/vfg2006/banarsibot-api/internal/usecases/selling"
	"github.com/vfg2006/banarsibot-api/pkg/log"
	"github.com/vfg2006/banarsibot-api/pkg/metrics"
)

type MessageHandler interface {
	Handle(ctx context.Context, msg domain.InboundMessage)
}

// Router sends each inbound message to the sale logger or the answerer and
// delivers the resulting reply. No state is kept between messages.
type Router struct {
	saleLogger selling.SaleLogger
	answerer   answering.Answerer
	gateway    twilio.Gateway
}

func NewRouter(saleLogger selling.SaleLogger, answerer answering.Answerer, gateway twilio.Gateway) *Router {
	return &Router{
		saleLogger: saleLogger,
		answerer:   answerer,
		gateway:    gateway,
	}
}

// Classify reports which path a message body takes. Any occurrence of the
// sale marker, even mid-sentence, selects the sale path.
func Classify(body string) domain.Route {
	if strings.Contains(body, domain.SaleMarker) {
		return domain.RouteSale
	}
	return domain.RouteQuery
}

func (r *Router) Handle(ctx context.Context, msg domain.InboundMessage) {
	route := Classify(msg.Body)
	metrics.InboundMessages.WithLabelValues(string(route)).Inc()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"route":       route,
		"from":        msg.SenderPhone,
		"message_sid": msg.MessageSID,
	})
	logger.Info("inbound: message received")

	var reply string
	switch route {
	case domain.RouteSale:
		reply = r.saleLogger.LogSale(ctx, msg.Body, msg.SenderPhone)
	default:
		reply = r.answerer.Answer(ctx, msg.Body)
	}

	if err := r.gateway.SendText(ctx, msg.SenderPhone, reply); err != nil {
		logger.WithError(err).Error("inbound: failed to deliver reply")
	}
}
