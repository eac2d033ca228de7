package twilioclient

import (
	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twiliorequest "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/vfg2006/banarsibot-api/internal/config"
)

type Client interface {
	SendMessage(from, to, body string) (string, error)
}

// messageAPI is the subset of the Twilio REST API this client calls.
type messageAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type TwilioClient struct {
	api messageAPI
}

func NewClient(cfg *config.Config) Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.Twilio.AccountSID,
		Password: cfg.Twilio.AuthToken,
	})

	return &TwilioClient{api: rest.Api}
}

// SendMessage creates an outbound message and returns its SID.
func (c *TwilioClient) SendMessage(from, to, body string) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		return "", errors.Wrap(err, "twilio: create message")
	}

	if resp == nil || resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

// SignatureValidator checks the X-Twilio-Signature header of webhook requests.
type SignatureValidator interface {
	Validate(url string, params map[string]string, signature string) bool
}

func NewSignatureValidator(cfg *config.Config) SignatureValidator {
	validator := twiliorequest.NewRequestValidator(cfg.Twilio.AuthToken)
	return &validator
}
