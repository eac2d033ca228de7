package twilioclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/vfg2006/banarsibot-api/internal/config"
)

type fakeMessageAPI struct {
	params *openapi.CreateMessageParams
	resp   *openapi.ApiV2010Message
	err    error
}

func (f *fakeMessageAPI) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = params
	return f.resp, f.err
}

func TestTwilioClient_SendMessage(t *testing.T) {
	sid := "SM123"
	api := &fakeMessageAPI{resp: &openapi.ApiV2010Message{Sid: &sid}}
	client := &TwilioClient{api: api}

	got, err := client.SendMessage("whatsapp:+14155238886", "whatsapp:+919800000000", "namaste")
	require.NoError(t, err)

	assert.Equal(t, "SM123", got)
	require.NotNil(t, api.params)
	assert.Equal(t, "whatsapp:+14155238886", *api.params.From)
	assert.Equal(t, "whatsapp:+919800000000", *api.params.To)
	assert.Equal(t, "namaste", *api.params.Body)
}

func TestTwilioClient_SendMessageError(t *testing.T) {
	client := &TwilioClient{api: &fakeMessageAPI{err: errors.New("status: 401")}}

	_, err := client.SendMessage("from", "to", "body")
	assert.ErrorContains(t, err, "twilio: create message: status: 401")
}

func TestSignatureValidator_RejectsForgedSignature(t *testing.T) {
	validator := NewSignatureValidator(&config.Config{Twilio: config.Twilio{AuthToken: "secret"}})

	ok := validator.Validate("https://example.com/whatsapp", map[string]string{"Body": "hi"}, "forged")
	assert.False(t, ok)
}
