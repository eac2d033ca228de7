package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/banarsibot-api/internal/domain"
	"github.com/vfg2006/banarsibot-api/internal/usecases/inbound"
	"github.com/vfg2006/banarsibot-api/pkg/apiErrors"
	"github.com/vfg2006/banarsibot-api/pkg/log"
)

var webhookSuccess = map[string]string{"status": "success"}

// WhatsAppWebhook receives Twilio's inbound message callback. Outcomes are
// reported to the sender as chat replies; the HTTP response is always the
// same success payload once a message with a sender has been routed.
func WhatsAppWebhook(messageHandler inbound.MessageHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid form body", nil)
			return
		}

		msg := domain.InboundMessage{
			SenderPhone: r.PostForm.Get("From"),
			Body:        r.PostForm.Get("Body"),
			MessageSID:  r.PostForm.Get("MessageSid"),
		}

		if strings.TrimSpace(msg.SenderPhone) == "" {
			log.ForContext(r.Context()).Warn("webhook: message without sender, nobody to reply to")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "From is required", map[string]string{"field": "From"})
			return
		}

		messageHandler.Handle(r.Context(), msg)
		writeJSON(w, r, http.StatusOK, webhookSuccess)
	}
}
