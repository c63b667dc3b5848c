// Package tui renders the home dashboard in the terminal.
//
// The dashboard reads snapshots of the dashboard state, re-renders whenever
// the state signals a change and dispatches user actions (sending a
// message, switching the actuator, deleting an event) to the sync client.
package tui
