// Package http implements the device API served by the simulator.
//
// It exposes the routes the dashboard talks to (sensors, actuator control,
// messages and events) on a chi router. Request tracing, access logging,
// response compression and method checks are handled by middleware before
// requests reach the device.
package http
