// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// dashboard and the device simulator.
//
// The dashboard Msg* constants are the exact strings placed into the
// dashboard error slot. The simulator Msg* constants are written into HTTP
// response bodies and must match what the device firmware answers.
package app

// Messages surfaced by the dashboard.
const (
	// MsgSensorFetchFailed is shown when a sensor refresh fails.
	MsgSensorFetchFailed = "Error fetching sensor data. Please try again later."

	// MsgEventFetchFailed is shown when the startup event fetch fails.
	MsgEventFetchFailed = "Error fetching events"

	// MsgEventDeleteFailed is shown when deleting an event fails.
	MsgEventDeleteFailed = "Error deleting event"
)

// Messages answered by the device simulator.
const (
	// MsgInvalidAction is returned by /control for anything but on/off.
	MsgInvalidAction = "Invalid action"

	// MsgNoMessageProvided is returned by /send-message for an empty body.
	MsgNoMessageProvided = "No message provided"

	// MsgInvalidEventIndex is returned by /delete-event for a missing,
	// non-numeric or out-of-range index.
	MsgInvalidEventIndex = "Invalid event index"

	// MsgMessageReceived acknowledges a stored message.
	MsgMessageReceived = "Message received"

	// MsgEventDeleted acknowledges a removed event.
	MsgEventDeleted = "Event deleted"

	// MsgSensorReadFailed is returned when the simulated serial link fails.
	MsgSensorReadFailed = "sensor read failed"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "internal server error"
)
