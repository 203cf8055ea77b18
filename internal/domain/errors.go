package domain

import "errors"

// Sentinel errors shared across services and handlers. Handlers map these to
// HTTP status codes; anything unrecognized is treated as an internal error.
var (
	ErrInvalidMessage          = errors.New("message must contain text or an attachment")
	ErrInvalidNotificationType = errors.New("unknown notification type")
	ErrMissingCredentials      = errors.New("email and password are required")
	ErrEmailTaken              = errors.New("email is already registered")
	ErrNotFound                = errors.New("not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
)
