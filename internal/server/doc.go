// Package server runs the HTTP servers of the dashboard and the device
// simulator.
//
// It owns listener setup, signal handling and graceful shutdown. The
// dashboard uses it for the optional metrics endpoint, the simulator for
// the device API.
package server
