package simulator

import "errors"

var (
	ErrSensorRead        = errors.New("sensor read failed")
	ErrInvalidAction     = errors.New("invalid action")
	ErrEmptyMessage      = errors.New("no message provided")
	ErrInvalidEventIndex = errors.New("invalid event index")
)
