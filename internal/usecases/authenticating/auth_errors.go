package authenticating

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrMissingSubject = errors.New("token subject is required")
	// ErrAuthDisabled is returned for every token when no signing secret is configured.
	ErrAuthDisabled = errors.New("admin API disabled: no signing secret configured")
)

// IsAuthorizationError reports whether err should surface as a 401.
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrAuthDisabled)
}
