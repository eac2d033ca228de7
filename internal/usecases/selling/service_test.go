package selling

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/banarsibot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/banarsibot-api/internal/config"
	"github.com/vfg2006/banarsibot-api/internal/domain"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func newTestService(t *testing.T) (*Service, *mocks.MockSalesRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(repo, &config.Config{Location: time.UTC})

	return service, repo
}

func TestService_LogSale_AppendsExactlyOneRow(t *testing.T) {
	service, repo := newTestService(t)
	service.now = func() time.Time { return time.Date(2026, 10, 17, 10, 30, 5, 0, time.UTC) }

	var saved domain.SaleRecord
	repo.EXPECT().
		AppendSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sale domain.SaleRecord) error {
			saved = sale
			return nil
		}).
		Times(1)

	reply := service.LogSale(context.Background(), "#sale Katan Butidar 4500", "whatsapp:+919800000000")

	assert.Equal(t, MessageSaleLogged, reply)
	assert.Equal(t, domain.SaleRecord{
		Phone:     "whatsapp:+919800000000",
		SariType:  "Katan",
		Design:    "Butidar",
		Price:     4500,
		Timestamp: "2026-10-17 10:30:05",
	}, saved)
}

func TestService_LogSale_TimestampIsWellFormed(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().
		AppendSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sale domain.SaleRecord) error {
			assert.Regexp(t, timestampPattern, sale.Timestamp)
			return nil
		})

	assert.Equal(t, MessageSaleLogged, service.LogSale(context.Background(), "#sale Katan Butidar ₹4500", "p"))
}

func TestService_LogSale_InvalidFormatDoesNotWrite(t *testing.T) {
	inputs := []string{
		"#sale",
		"#sale Katan",
		"#sale Katan Butidar",
		"#sale Katan Butidar price",
		"please #sale this one",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			// no EXPECT: any AppendSale call fails the test
			service, _ := newTestService(t)

			reply := service.LogSale(context.Background(), input, "whatsapp:+91")
			assert.Equal(t, "Invalid sale format. Use: #sale <type> <design> <price>", reply)
		})
	}
}

func TestService_LogSale_SpreadsheetFailureBecomesMessage(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().
		AppendSale(gomock.Any(), gomock.Any()).
		Return(errors.New("gsheets: append row: googleapi: Error 503: unavailable"))

	reply := service.LogSale(context.Background(), "#sale Katan Butidar 4500", "whatsapp:+91")

	assert.Equal(t, "Error logging sale: gsheets: append row: googleapi: Error 503: unavailable", reply)
}

func TestService_LogSale_PriceOverflowBecomesMessage(t *testing.T) {
	service, _ := newTestService(t)

	reply := service.LogSale(context.Background(), "#sale Katan Butidar 99999999999999999999999", "whatsapp:+91")

	require.True(t, strings.HasPrefix(reply, "Error logging sale: "), reply)
	assert.Contains(t, reply, "invalid price")
}
