package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{code: ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{code: ErrInsufficientPrivilege, wantStatus: http.StatusForbidden},
		{code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{code: ErrNoSalesHistory, wantStatus: http.StatusUnprocessableEntity},
		{code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{code: "NOPE_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "something happened", map[string]string{"field": "From"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "something happened", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrExternalService, Message: "boom"}, FromError(errors.New("boom"), ErrExternalService))
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrExternalService).Code)
}
