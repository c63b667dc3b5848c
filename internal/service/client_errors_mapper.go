// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/adapter"
)

// failureReason classifies an adapter error into a short label for logs.
func failureReason(err error) string {
	var netErr net.Error

	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, adapter.ErrNotAcknowledged):
		return "not_acknowledged"
	case errors.Is(err, adapter.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, adapter.ErrBadRequest):
		return "bad_request"
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, adapter.ErrMethodNotAllowed):
		return "unsupported"
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return "device_error"
	case errors.Is(err, adapter.ErrUnexpectedStatus):
		return "unexpected_status"
	default:
		return "transport"
	}
}
