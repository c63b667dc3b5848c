// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SensorSnapshot is the locally mirrored set of device readings.
//
// Every field is independently nullable: nil means the reading has not been
// fetched yet or the last payload did not carry a usable number for it.
// A nil reading is rendered as "N/A" and is never coerced to zero.
type SensorSnapshot struct {
	// Temperature in degrees Celsius.
	Temperature *float64 `json:"temperature"`
	// Humidity in percent.
	Humidity *float64 `json:"humidity"`
	// WaterLevel in percent.
	WaterLevel *float64 `json:"waterLevel"`
}

// IsEmpty reports whether no reading is present.
func (s SensorSnapshot) IsEmpty() bool {
	return s.Temperature == nil && s.Humidity == nil && s.WaterLevel == nil
}

// Clone returns a deep copy so callers never share reading pointers.
func (s SensorSnapshot) Clone() SensorSnapshot {
	return SensorSnapshot{
		Temperature: cloneFloat(s.Temperature),
		Humidity:    cloneFloat(s.Humidity),
		WaterLevel:  cloneFloat(s.WaterLevel),
	}
}

// Equal compares two snapshots reading by reading.
func (s SensorSnapshot) Equal(other SensorSnapshot) bool {
	return floatPtrEqual(s.Temperature, other.Temperature) &&
		floatPtrEqual(s.Humidity, other.Humidity) &&
		floatPtrEqual(s.WaterLevel, other.WaterLevel)
}

// Float returns a pointer to a copy of v. Handy for building snapshots.
func Float(v float64) *float64 {
	return &v
}

// Reading is a numeric-coercible JSON value.
//
// It accepts JSON numbers and strings holding a decimal number. Anything
// else (missing key, null, booleans, garbage strings, NaN/Inf) leaves the
// reading invalid without failing the surrounding payload.
type Reading struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *Reading) UnmarshalJSON(b []byte) error {
	*r = Reading{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	var (
		v   float64
		err error
	)
	switch value := raw.(type) {
	case float64:
		v = value
	case string:
		v, err = strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
	default:
		return nil
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	r.Value = v
	r.Valid = true
	return nil
}

// MarshalJSON writes the value as a number, or null when invalid.
func (r Reading) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// Ptr converts the reading into the nullable form used by [SensorSnapshot].
func (r Reading) Ptr() *float64 {
	if !r.Valid {
		return nil
	}
	return Float(r.Value)
}

// NewReading builds a valid reading.
func NewReading(v float64) Reading {
	return Reading{Value: v, Valid: true}
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
