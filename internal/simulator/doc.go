// Package simulator holds the in-memory device behind cmd/devicesim.
//
// Device answers the same operations as the real home device: sensor
// reads, actuator control, a short message list and an event log. Readings
// drift on a ticker and a water level above the flood threshold records a
// flood event on every read.
package simulator
