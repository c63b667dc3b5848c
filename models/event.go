// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventKindFloodDetected is the only event kind the dashboard surfaces.
const EventKindFloodDetected = "Flood detected"

// DeviceTimeLayout is the timestamp format the device writes into its event log.
const DeviceTimeLayout = "2006-01-02 15:04:05"

// Event is a single entry of the device event log.
type Event struct {
	Timestamp Timestamp `json:"timestamp"`
	Kind      string    `json:"event"`
}

// FilterEvents returns the events whose kind equals kind, in stored order.
// The result is a fresh slice; events is left untouched.
func FilterEvents(events []Event, kind string) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// StoredIndex maps the position of an event inside the kind-filtered view
// back to its position in the unfiltered slice.
func StoredIndex(events []Event, kind string, displayIndex int) (int, bool) {
	if displayIndex < 0 {
		return 0, false
	}

	seen := 0
	for i, e := range events {
		if e.Kind != kind {
			continue
		}
		if seen == displayIndex {
			return i, true
		}
		seen++
	}
	return 0, false
}

// Epoch milliseconds outside this range do not fit in an int64.
const (
	minEpochMillis = -(1 << 63)
	maxEpochMillis = 1 << 63
)

// Timestamp is an event time as emitted by the device.
//
// The device may send epoch milliseconds, a "2006-01-02 15:04:05" string or
// an RFC 3339 string. Strings that match none of these, and numbers that do
// not fit in int64 milliseconds, are kept verbatim so they can still be
// displayed.
type Timestamp struct {
	Time time.Time
	raw  string
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	*t = Timestamp{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode event timestamp: %w", err)
	}

	switch value := raw.(type) {
	case float64:
		if value < minEpochMillis || value >= maxEpochMillis {
			t.raw = string(b)
			return nil
		}
		t.Time = time.UnixMilli(int64(value))
	case string:
		value = strings.TrimSpace(value)
		if parsed, err := time.ParseInLocation(DeviceTimeLayout, value, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			t.Time = parsed
			return nil
		}
		t.raw = value
	default:
		return fmt.Errorf("unsupported event timestamp %s", string(b))
	}

	return nil
}

// MarshalJSON writes the timestamp in the device layout, or the original
// string when it could not be parsed.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return json.Marshal(t.raw)
	}
	return json.Marshal(t.Time.Format(DeviceTimeLayout))
}

// String renders the timestamp in local time.
func (t Timestamp) String() string {
	if t.Time.IsZero() {
		if t.raw == "" {
			return "-"
		}
		return t.raw
	}
	return t.Time.Local().Format(DeviceTimeLayout)
}
