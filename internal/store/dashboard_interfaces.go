// Package store holds the dashboard's in-memory state container.
//
// [DashboardState] is the single owner of every locally cached mirror of the
// device's resources. All writes go through its methods, every write is a
// full per-entity replacement or a single mutation, and readers only ever see
// copies via [DashboardState.Snapshot].
package store

import "github.com/mirunaCalugar/Home-Assistant-Frontend/models"

// DashboardStore is the write and read surface the sync layer depends on.
// Every write returns false when it was not applied: the store is closed,
// the write was stale, or the target index did not exist.
type DashboardStore interface {
	// Begin records the start of an operation on entity and returns the
	// ticket its eventual write must carry.
	Begin(entity Entity) Ticket

	ReplaceSensors(t Ticket, snapshot models.SensorSnapshot) bool
	ReplaceEvents(t Ticket, events []models.Event) bool
	ReplaceMessages(t Ticket, messages []models.Message) bool
	AppendMessage(t Ticket, msg models.Message) bool
	SetActuator(t Ticket, state models.ActuatorState) bool
	RemoveEventAt(t Ticket, index int) bool

	SetError(msg string) bool
	ClearError() bool
	SetPendingMessage(text string) bool
	ClearPendingMessage() bool

	// StoredEventIndex maps a position in the filtered event list to its
	// position in the stored list.
	StoredEventIndex(displayIndex int) (int, bool)

	Snapshot() Snapshot
	Changes() <-chan struct{}
	Close()
	Closed() bool
}
