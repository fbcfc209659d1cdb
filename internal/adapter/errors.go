package adapter

import "errors"

// Sentinel errors returned by the gateways. HTTP failures are mapped onto
// them by mapHTTPError.
var (
	// ErrNotConfigured is returned by the disabled gateways used when no
	// remote URL or key is configured.
	ErrNotConfigured = errors.New("remote backend is not configured")

	// ErrUnavailable wraps transport failures: DNS, refused connections,
	// timeouts and 502/503/504 answers.
	ErrUnavailable = errors.New("remote backend unavailable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoSession is returned by operations that need a signed-in user.
	ErrNoSession = errors.New("no active session")

	// ErrMissingVerifier is returned by ExchangeCode when no sign-in was
	// started by this client.
	ErrMissingVerifier = errors.New("no pending sign-in to complete")
)
