package middleware

import (
	"net/http"

	"github.com/vfg2006/banarsibot-api/infrastructure/integrator/twilio/twilioclient"
	"github.com/vfg2006/banarsibot-api/pkg/apiErrors"
	"github.com/vfg2006/banarsibot-api/pkg/log"
)

const twilioSignatureHeader = "X-Twilio-Signature"

// TwilioSignature rejects webhook calls whose X-Twilio-Signature does not
// match the form parameters signed against publicURL.
func TwilioSignature(validator twilioclient.SignatureValidator, publicURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid form body", nil)
				return
			}

			params := make(map[string]string, len(r.PostForm))
			for key := range r.PostForm {
				params[key] = r.PostForm.Get(key)
			}

			if !validator.Validate(publicURL, params, r.Header.Get(twilioSignatureHeader)) {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("twilio: webhook signature mismatch")
				apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "Invalid Twilio signature", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
