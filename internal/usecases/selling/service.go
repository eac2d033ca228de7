package selling

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/banarsibot-api/infrastructure/repository"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/pkg/log"
	"github.com/vfg2006/banarsibot-api/pkg/metrics"
)

// SaleLogger turns a sale command into a spreadsheet row. It always answers
// with a chat message; failures are reported in the message, never returned.
type SaleLogger interface {
	LogSale(ctx context.Context, msg string, phone string) string
}

type Service struct {
	salesRepository repository.SalesRepository
	location        *time.Location
	now             func() time.Time
}

func NewService(salesRepository repository.SalesRepository, cfg *config.Config) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		salesRepository: salesRepository,
		location:        loc,
		now:             time.Now,
	}
}

func (s *Service) LogSale(ctx context.Context, msg string, phone string) string {
	logger := log.ForContext(ctx)

	fields, ok := ParseSale(msg)
	if !ok {
		metrics.SalesLogged.WithLabelValues("invalid_format").Inc()
		logger.WithField("sale_message", msg).Info("selling: message does not match sale format")
		return MessageInvalidFormat
	}

	sale, err := s.newSaleRecord(fields, phone)
	if err != nil {
		return s.failure(logger, err)
	}

	if err := s.salesRepository.AppendSale(ctx, sale); err != nil {
		metrics.ExternalCallFailures.WithLabelValues(metrics.ServiceSheets).Inc()
		return s.failure(logger, err)
	}

	metrics.SalesLogged.WithLabelValues("logged").Inc()
	logger.WithFields(log.Fields{
		"sale_type":   sale.SariType,
		"sale_design": sale.Design,
		"sale_price":  sale.Price,
	}).Info("selling: sale logged")

	return MessageSaleLogged
}

func (s *Service) newSaleRecord(fields SaleFields, phone string) (domain.SaleRecord, error) {
	price, err := strconv.Atoi(fields.Price)
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(err, "invalid price %q", fields.Price)
	}

	return domain.SaleRecord{
		Phone:     phone,
		SariType:  fields.SariType,
		Design:    fields.Design,
		Price:     price,
		Timestamp: s.now().In(s.location).Format(domain.TimestampLayout),
	}, nil
}

func (s *Service) failure(logger log.Logger, err error) string {
	metrics.SalesLogged.WithLabelValues("failed").Inc()
	logger.WithError(err).Error("selling: could not log sale")
	return messageErrorPrefix + err.Error()
}
