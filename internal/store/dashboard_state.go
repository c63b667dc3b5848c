// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

// Entity names one independently replaced part of the dashboard state.
type Entity int

const (
	EntitySensors Entity = iota
	EntityActuator
	EntityMessages
	EntityEvents

	entityCount
)

func (e Entity) String() string {
	switch e {
	case EntitySensors:
		return "sensors"
	case EntityActuator:
		return "actuator"
	case EntityMessages:
		return "messages"
	case EntityEvents:
		return "events"
	default:
		return "unknown"
	}
}

// Ticket identifies one operation on an entity in start order.
type Ticket struct {
	Entity Entity
	Seq    uint64
}

// Options configures a [DashboardState].
type Options struct {
	// MessageCap bounds the message log after a local append. Zero or less
	// means [models.MessageLogCap].
	MessageCap int

	// EventKind selects the events shown in the filtered list. Empty means
	// [models.EventKindFloodDetected].
	EventKind string

	// DiscardStale drops a full replacement whose ticket is older than the
	// last write applied to the same entity. When false the last completed
	// write wins.
	DiscardStale bool
}

// Snapshot is an immutable copy of the dashboard state.
type Snapshot struct {
	Sensors  models.SensorSnapshot
	Actuator models.ActuatorState
	Messages []models.Message
	Events   []models.Event
	// FilteredEvents holds the events of the configured kind in stored order.
	FilteredEvents []models.Event
	Error          string
	PendingMessage string
}

// DashboardState is the explicit state container behind the dashboard.
// It is safe for concurrent use.
type DashboardState struct {
	opts Options

	mu       sync.RWMutex
	closed   bool
	sensors  models.SensorSnapshot
	actuator models.ActuatorState
	messages []models.Message
	events   []models.Event
	lastErr  string
	pending  string

	started [entityCount]uint64
	applied [entityCount]uint64

	changes chan struct{}
}

var _ DashboardStore = (*DashboardState)(nil)

// NewDashboardState returns an empty, open state container.
func NewDashboardState(opts Options) *DashboardState {
	if opts.MessageCap <= 0 {
		opts.MessageCap = models.MessageLogCap
	}
	if opts.EventKind == "" {
		opts.EventKind = models.EventKindFloodDetected
	}

	return &DashboardState{
		opts:    opts,
		changes: make(chan struct{}, 1),
	}
}

// Options returns the effective options.
func (s *DashboardState) Options() Options {
	return s.opts
}

// Begin implements [DashboardStore].
func (s *DashboardState) Begin(entity Entity) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started[entity]++
	return Ticket{Entity: entity, Seq: s.started[entity]}
}

// replace runs apply under the lock when a full replacement is allowed.
func (s *DashboardState) replace(t Ticket, apply func()) bool {
	s.mu.Lock()
	if s.closed || (s.opts.DiscardStale && t.Seq < s.applied[t.Entity]) {
		s.mu.Unlock()
		return false
	}

	apply()
	s.applied[t.Entity] = max(s.applied[t.Entity], t.Seq)
	s.mu.Unlock()

	s.notify()
	return true
}

// mutate runs apply under the lock unless the store is closed. apply may
// refuse the write by returning false.
func (s *DashboardState) mutate(t Ticket, apply func() bool) bool {
	s.mu.Lock()
	if s.closed || !apply() {
		s.mu.Unlock()
		return false
	}

	s.applied[t.Entity] = max(s.applied[t.Entity], t.Seq)
	s.mu.Unlock()

	s.notify()
	return true
}

// ReplaceSensors implements [DashboardStore]. All three readings are
// replaced together.
func (s *DashboardState) ReplaceSensors(t Ticket, snapshot models.SensorSnapshot) bool {
	snapshot = snapshot.Clone()
	return s.replace(t, func() { s.sensors = snapshot })
}

// ReplaceEvents implements [DashboardStore]. The stored order is the given
// order.
func (s *DashboardState) ReplaceEvents(t Ticket, events []models.Event) bool {
	events = slices.Clone(events)
	return s.replace(t, func() { s.events = events })
}

// ReplaceMessages implements [DashboardStore]. The message cap is not
// applied: the device's list is taken as is.
func (s *DashboardState) ReplaceMessages(t Ticket, messages []models.Message) bool {
	messages = slices.Clone(messages)
	return s.replace(t, func() { s.messages = messages })
}

// AppendMessage implements [DashboardStore]. The oldest entries are evicted
// beyond the message cap.
func (s *DashboardState) AppendMessage(t Ticket, msg models.Message) bool {
	return s.mutate(t, func() bool {
		s.messages = models.AppendCapped(s.messages, msg, s.opts.MessageCap)
		return true
	})
}

// SetActuator implements [DashboardStore].
func (s *DashboardState) SetActuator(t Ticket, state models.ActuatorState) bool {
	return s.mutate(t, func() bool {
		s.actuator = state
		return true
	})
}

// RemoveEventAt implements [DashboardStore]. Index addresses the stored list.
func (s *DashboardState) RemoveEventAt(t Ticket, index int) bool {
	return s.mutate(t, func() bool {
		if index < 0 || index >= len(s.events) {
			return false
		}
		s.events = slices.Delete(slices.Clone(s.events), index, index+1)
		return true
	})
}

// SetError implements [DashboardStore]. The latest error replaces any
// previous one.
func (s *DashboardState) SetError(msg string) bool {
	return s.setField(func() { s.lastErr = msg })
}

// ClearError implements [DashboardStore].
func (s *DashboardState) ClearError() bool {
	return s.setField(func() { s.lastErr = "" })
}

// SetPendingMessage implements [DashboardStore].
func (s *DashboardState) SetPendingMessage(text string) bool {
	return s.setField(func() { s.pending = text })
}

// ClearPendingMessage implements [DashboardStore].
func (s *DashboardState) ClearPendingMessage() bool {
	return s.setField(func() { s.pending = "" })
}

func (s *DashboardState) setField(apply func()) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	apply()
	s.mu.Unlock()

	s.notify()
	return true
}

// StoredEventIndex implements [DashboardStore].
func (s *DashboardState) StoredEventIndex(displayIndex int) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.StoredIndex(s.events, s.opts.EventKind, displayIndex)
}

// FilteredEvents returns a copy of the events of the configured kind.
func (s *DashboardState) FilteredEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.FilterEvents(s.events, s.opts.EventKind)
}

// Snapshot implements [DashboardStore].
func (s *DashboardState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Sensors:        s.sensors.Clone(),
		Actuator:       s.actuator,
		Messages:       slices.Clone(s.messages),
		Events:         slices.Clone(s.events),
		FilteredEvents: models.FilterEvents(s.events, s.opts.EventKind),
		Error:          s.lastErr,
		PendingMessage: s.pending,
	}
}

// Changes implements [DashboardStore]. The channel receives at most one
// pending signal; several writes before a read coalesce into one. It is
// closed by Close.
func (s *DashboardState) Changes() <-chan struct{} {
	return s.changes
}

// notify is called without holding mu.
func (s *DashboardState) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Close implements [DashboardStore]. Every later write is ignored.
func (s *DashboardState) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.changes)
}

// Closed implements [DashboardStore].
func (s *DashboardState) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
