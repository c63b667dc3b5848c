package service

import "errors"

var (
	ErrSensorFetch    = errors.New("sensor fetch failed")
	ErrEventFetch     = errors.New("event fetch failed")
	ErrEventDelete    = errors.New("event delete failed")
	ErrMessageFetch   = errors.New("message fetch failed")
	ErrMessageSend    = errors.New("message send failed")
	ErrActuatorToggle = errors.New("actuator toggle failed")

	// ErrClosed is returned for operations started or finished after Close.
	ErrClosed = errors.New("sync client is closed")

	// ErrStaleResponse is returned when a refresh result was discarded
	// because a newer write to the same resource was already applied.
	ErrStaleResponse = errors.New("stale response discarded")

	// ErrEventIndexOutOfRange is returned when the device confirmed a delete
	// but the local log no longer has an entry at that position.
	ErrEventIndexOutOfRange = errors.New("event index out of range")
)
