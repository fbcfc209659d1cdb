package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// Error taxonomy of the client services. Gateway and store errors are
// folded into these by mapGatewayError; the original error stays in the
// chain.
var (
	// ErrValidation means the input was refused, locally or by the backend.
	ErrValidation = errors.New("validation failed")
	// ErrGateway is a transport or policy failure of the notes backend.
	ErrGateway = errors.New("notes gateway failure")
	// ErrAuth is any failure reported by the identity provider.
	ErrAuth = errors.New("auth failure")
	// ErrNotFound means the referenced note is absent.
	ErrNotFound = errors.New("note not found")
)

var (
	errTitleRequired = fmt.Errorf("%w: %w", ErrValidation, validators.ErrTitleRequired)
	errUnknownNote   = fmt.Errorf("%w: not in the local collection", ErrNotFound)
)
