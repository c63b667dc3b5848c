// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simulator

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/workers"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

// MaxEntries caps both the message list and the event log.
const MaxEntries = 10

// Initial readings of a fresh device.
const (
	InitialTemperature = 22.5
	InitialHumidity    = 60
	InitialWaterLevel  = 10
)

const (
	temperatureStep = 0.5
	humidityStep    = 1.5
	waterRise       = 2.0
	waterDrain      = 5.0
)

const stepJobName = "simulator_step"

// Device is a concurrency-safe in-memory home device.
type Device struct {
	mu sync.Mutex

	temperature float64
	humidity    float64
	waterLevel  float64
	actuatorOn  bool

	messages []string
	events   []models.Event

	floodThreshold float64
	failureRate    float64
	rng            *rand.Rand
	now            func() time.Time

	stepper *workers.Periodic
	logger  *logger.Logger
}

// NewDevice builds a Device from simulator settings. A zero Seed picks a
// random one.
func NewDevice(cfg config.Simulator, log *logger.Logger) *Device {
	if log == nil {
		log = logger.Nop()
	}

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = rand.Uint64()
	}

	d := &Device{
		temperature:    InitialTemperature,
		humidity:       InitialHumidity,
		waterLevel:     InitialWaterLevel,
		messages:       make([]string, 0, MaxEntries),
		events:         make([]models.Event, 0, MaxEntries),
		floodThreshold: cfg.FloodThreshold,
		failureRate:    cfg.SensorFailureRate,
		rng:            rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:            time.Now,
		logger:         log,
	}
	d.stepper = workers.NewPeriodic(stepJobName, cfg.TickInterval, func(context.Context) error {
		d.Step()
		return nil
	}, log)

	return d
}

// Start implements [workers.Worker]. Readings evolve on every tick until
// ctx is cancelled or Stop is called.
func (d *Device) Start(ctx context.Context) {
	d.stepper.Start(ctx)
}

// Stop implements [workers.Worker].
func (d *Device) Stop() {
	d.stepper.Stop()
}

// Step advances the readings by one random-walk step. A running actuator
// (the pump) drains the water level, otherwise it slowly rises.
func (d *Device) Step() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.temperature = clamp(d.temperature+d.jitter(temperatureStep), -10, 50)
	d.humidity = clamp(d.humidity+d.jitter(humidityStep), 0, 100)

	if d.actuatorOn {
		d.waterLevel -= waterDrain * d.rng.Float64()
	} else {
		d.waterLevel += waterRise * d.rng.Float64()
	}
	d.waterLevel = clamp(d.waterLevel, 0, 100)
}

// ReadSensors returns the current readings. A read above the flood
// threshold stores a flood event, one per read.
func (d *Device) ReadSensors() (models.SensorsResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failureRate > 0 && d.rng.Float64() < d.failureRate {
		return models.SensorsResponse{}, ErrSensorRead
	}

	if d.waterLevel > d.floodThreshold {
		d.storeEvent(models.EventKindFloodDetected)
		d.logger.Warn().Float64("water_level", d.waterLevel).Msg("flood detected")
	}

	return models.SensorsResponse{
		Temperature: models.NewReading(round1(d.temperature)),
		Humidity:    models.NewReading(round1(d.humidity)),
		WaterLevel:  models.NewReading(round1(d.waterLevel)),
	}, nil
}

// SetReadings overrides the current readings.
func (d *Device) SetReadings(temperature, humidity, waterLevel float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.temperature, d.humidity, d.waterLevel = temperature, humidity, waterLevel
}

// Control switches the actuator.
func (d *Device) Control(raw string) (models.ActuatorAction, error) {
	action, ok := models.ParseActuatorAction(raw)
	if !ok {
		return "", ErrInvalidAction
	}

	d.mu.Lock()
	d.actuatorOn = action == models.ActuatorOn
	d.mu.Unlock()

	return action, nil
}

// ActuatorOn reports the actuator state.
func (d *Device) ActuatorOn() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.actuatorOn
}

// AddMessage appends msg, evicting the oldest message beyond [MaxEntries].
func (d *Device) AddMessage(msg string) error {
	if msg == "" {
		return ErrEmptyMessage
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.messages) >= MaxEntries {
		d.messages = d.messages[1:]
	}
	d.messages = append(d.messages, msg)
	return nil
}

// Messages returns a copy of the message list, oldest first.
func (d *Device) Messages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.messages))
	copy(out, d.messages)
	return out
}

// Events returns a copy of the event log, oldest first.
func (d *Device) Events() []models.Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.Event, len(d.events))
	copy(out, d.events)
	return out
}

// AddEvent stores an event of the given kind stamped with the current time.
func (d *Device) AddEvent(kind string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.storeEvent(kind)
}

// DeleteEvent removes the event at index.
func (d *Device) DeleteEvent(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index < 0 || index >= len(d.events) {
		return ErrInvalidEventIndex
	}

	d.events = append(d.events[:index:index], d.events[index+1:]...)
	return nil
}

// storeEvent must be called with mu held.
func (d *Device) storeEvent(kind string) {
	if len(d.events) >= MaxEntries {
		d.events = d.events[1:]
	}
	d.events = append(d.events, models.Event{
		Timestamp: models.NewTimestamp(d.now().Truncate(time.Second)),
		Kind:      kind,
	})
}

func (d *Device) jitter(step float64) float64 {
	return (d.rng.Float64()*2 - 1) * step
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
