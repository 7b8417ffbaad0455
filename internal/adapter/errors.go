package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes, so that callers can use
// [errors.Is] for transport-agnostic error handling.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrMissingBearerToken is returned when an auth response carries no
	// usable Authorization header.
	ErrMissingBearerToken = errors.New("missing bearer token in response")
)
