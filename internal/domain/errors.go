package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")

	ErrEmailInUse           = errors.New("email already in use")
	ErrHandleTaken          = errors.New("handle already taken")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
