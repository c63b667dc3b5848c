package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// out of range.
var (
	// ErrInvalidAdapterConfigs indicates a missing device address or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates a non-positive message cap or an empty
	// event kind filter.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive poll interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSimulatorConfigs indicates a missing listen address, a
	// non-positive tick or a failure rate outside [0,1].
	ErrInvalidSimulatorConfigs = errors.New("invalid simulator configuration")
)
