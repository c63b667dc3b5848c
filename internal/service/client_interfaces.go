package service

import (
	"context"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/store"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncClient keeps the dashboard state consistent with the device.
//
// Every operation is a single attempt against the device and returns its
// error for diagnostics; what the UI observes is the resulting state. Failed
// sensor refreshes, event refreshes and event deletions are surfaced through
// the state's error slot. Message and actuator failures are only logged.
type SyncClient interface {
	// Start runs the startup refreshes of sensors, events and messages
	// concurrently and starts the periodic sensor refresh. Calls after the
	// first are no-ops.
	Start(ctx context.Context)

	// Close stops the periodic refresh and closes the state. Results that
	// arrive afterwards are ignored. Safe to call more than once.
	Close()

	// RefreshSensors replaces the sensor snapshot on success. On failure
	// the previous snapshot is kept and the error is surfaced.
	RefreshSensors(ctx context.Context) error

	// RefreshEvents replaces the event log on success. On failure the log
	// is kept and the error is surfaced.
	RefreshEvents(ctx context.Context) error

	// RefreshMessages replaces the message log on success, without the
	// local cap. Failures are logged only.
	RefreshMessages(ctx context.Context) error

	// SendMessage posts text. On acknowledgment the message is appended
	// under the cap and the pending input is cleared. Failures are logged
	// only and leave both untouched.
	SendMessage(ctx context.Context, text string) error

	// SetActuator requests the actuator state. The local state changes only
	// on acknowledgment. Failures are logged only.
	SetActuator(ctx context.Context, on bool) error

	// DeleteEvent deletes the event at displayIndex, the position within the
	// filtered list. The same index is sent to the device and removed from
	// the stored log on acknowledgment. On failure the error is surfaced.
	DeleteEvent(ctx context.Context, displayIndex int) error

	// SetPendingMessage records the text currently typed by the user.
	SetPendingMessage(text string)

	// State returns a copy of the current dashboard state.
	State() store.Snapshot

	// Changes signals after every state write and is closed by Close.
	Changes() <-chan struct{}
}
