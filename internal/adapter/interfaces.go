// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport boundary between the dashboard and
// the home device.
//
// The primary abstraction is [DeviceAdapter], which decouples the sync layer
// from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPDeviceAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrNotAcknowledged] for a
// mutation the device refused).
package adapter

import (
	"context"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/device_adapter_mock.go -package=mock

// DeviceAdapter defines transport-agnostic communication with the home
// device. Every call is a single attempt; implementations never retry.
type DeviceAdapter interface {
	// GetSensors fetches the current readings. Fields the device reports as
	// missing or non-numeric come back nil; the call itself still succeeds.
	GetSensors(ctx context.Context) (models.SensorSnapshot, error)

	// GetEvents fetches the full event log in stored order. A body without
	// the "events" key is an [ErrMalformedResponse].
	GetEvents(ctx context.Context) ([]models.Event, error)

	// GetMessages fetches the full message log. A body without the
	// "messages" key is an [ErrMalformedResponse].
	GetMessages(ctx context.Context) ([]models.Message, error)

	// SendMessage posts text to the device. Returns [ErrNotAcknowledged]
	// (wrapped) unless the device answers with status "success".
	SendMessage(ctx context.Context, text string) error

	// SetActuator switches the actuator on or off. Returns
	// [ErrNotAcknowledged] (wrapped) unless the device confirms.
	SetActuator(ctx context.Context, on bool) error

	// DeleteEvent removes the event at index from the device's stored log.
	// Returns [ErrNotAcknowledged] (wrapped) unless the device confirms.
	DeleteEvent(ctx context.Context, index int) error
}
