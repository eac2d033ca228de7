package inbound

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	twiliomocks "github.com/vfg2006/banarsibot-api/infrastructure/integrator/twilio/mocks"
	"github.com/vfg2006/banarsibot-api/internal/domain"
	answeringmocks "github.com/vfg2006/banarsibot-api/internal/usecases/answering/mocks"
	sellingmocks "github.com/vfg2006/banarsibot-api/internal/usecases/selling/mocks"
)

const sender = "whatsapp:+919812345678"

type routerMocks struct {
	saleLogger *sellingmocks.MockSaleLogger
	answerer   *answeringmocks.MockAnswerer
	gateway    *twiliomocks.MockGateway
}

func newTestRouter(t *testing.T) (*Router, routerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := routerMocks{
		saleLogger: sellingmocks.NewMockSaleLogger(ctrl),
		answerer:   answeringmocks.NewMockAnswerer(ctrl),
		gateway:    twiliomocks.NewMockGateway(ctrl),
	}

	return NewRouter(m.saleLogger, m.answerer, m.gateway), m
}

func TestClassify(t *testing.T) {
	tests := []struct {
		body string
		want domain.Route
	}{
		{body: "#sale Katan Butidar 4500", want: domain.RouteSale},
		{body: "please #sale this one", want: domain.RouteSale},
		{body: "#sales report", want: domain.RouteSale},
		{body: "#Sale Katan Butidar 4500", want: domain.RouteQuery},
		{body: "What is Katan silk?", want: domain.RouteQuery},
		{body: "", want: domain.RouteQuery},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.body))
		})
	}
}

func TestRouter_Handle_Sale(t *testing.T) {
	router, m := newTestRouter(t)
	body := "#sale Katan Butidar 4500"

	gomock.InOrder(
		m.saleLogger.EXPECT().LogSale(gomock.Any(), body, sender).Return("Sale logged successfully! धन्यवाद 🙏"),
		m.gateway.EXPECT().SendText(gomock.Any(), sender, "Sale logged successfully! धन्यवाद 🙏").Return(nil).Times(1),
	)
	m.answerer.EXPECT().Answer(gomock.Any(), gomock.Any()).Times(0)

	router.Handle(context.Background(), domain.InboundMessage{SenderPhone: sender, Body: body})
}

func TestRouter_Handle_MalformedSaleStillUsesSalePath(t *testing.T) {
	router, m := newTestRouter(t)
	body := "please #sale this one"
	usage := "Invalid sale format. Use: #sale <type> <design> <price>"

	m.saleLogger.EXPECT().LogSale(gomock.Any(), body, sender).Return(usage)
	m.gateway.EXPECT().SendText(gomock.Any(), sender, usage).Return(nil).Times(1)
	m.answerer.EXPECT().Answer(gomock.Any(), gomock.Any()).Times(0)

	router.Handle(context.Background(), domain.InboundMessage{SenderPhone: sender, Body: body})
}

func TestRouter_Handle_Query(t *testing.T) {
	router, m := newTestRouter(t)
	body := "Jangla design kitne ka hai?"

	m.answerer.EXPECT().Answer(gomock.Any(), body).Return("Ji, Jangla 6000 se shuru.")
	m.gateway.EXPECT().SendText(gomock.Any(), sender, "Ji, Jangla 6000 se shuru.").Return(nil).Times(1)
	m.saleLogger.EXPECT().LogSale(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	router.Handle(context.Background(), domain.InboundMessage{SenderPhone: sender, Body: body})
}

func TestRouter_Handle_SendFailureIsSwallowed(t *testing.T) {
	router, m := newTestRouter(t)

	m.answerer.EXPECT().Answer(gomock.Any(), "hello").Return("Namaste ji")
	m.gateway.EXPECT().SendText(gomock.Any(), sender, "Namaste ji").Return(errors.New("twilio: 21608")).Times(1)

	assert.NotPanics(t, func() {
		router.Handle(context.Background(), domain.InboundMessage{SenderPhone: sender, Body: "hello"})
	})
}
