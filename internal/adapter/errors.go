package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNotAcknowledged is returned when a mutation succeeds at the HTTP
	// level but the body does not carry status "success".
	ErrNotAcknowledged = errors.New("device did not acknowledge request")

	// ErrMalformedResponse is returned when a body cannot be decoded or
	// lacks its required key.
	ErrMalformedResponse = errors.New("malformed device response")

	// ErrInvalidAddress is returned by the constructor for an unusable
	// device address.
	ErrInvalidAddress = errors.New("invalid device address")
)
