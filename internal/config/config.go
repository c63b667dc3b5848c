// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

// Defaults applied before any other source.
const (
	DefaultDeviceAddress      = "localhost:5500"
	DefaultRequestTimeout     = 5 * time.Second
	DefaultSensorPollInterval = 5 * time.Second
	DefaultSimulatorAddress   = "localhost:5500"
	DefaultSimulatorTick      = time.Second
	DefaultFloodThreshold     = 30.0
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds dashboard behaviour switches and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the device backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background polling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds the optional prometheus endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Simulator holds settings of the development device simulator.
	Simulator Simulator `envPrefix:"SIMULATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds dashboard-level switches.
type App struct {
	// MessageLogCap bounds the local message log after an append.
	// Env: APP_MESSAGE_LOG_CAP
	MessageLogCap int `env:"MESSAGE_LOG_CAP"`

	// EventKindFilter is the event kind shown in the event list.
	// Env: APP_EVENT_KIND_FILTER
	EventKindFilter string `env:"EVENT_KIND_FILTER"`

	// ClearErrorOnSuccess makes any successful operation clear the
	// surfaced error. Off by default: the error stays until replaced.
	// Env: APP_CLEAR_ERROR_ON_SUCCESS
	ClearErrorOnSuccess bool `env:"CLEAR_ERROR_ON_SUCCESS"`

	// DiscardStaleResponses drops a refresh result when a write that
	// started later has already been applied to the same resource.
	// Off by default: the last completed response wins.
	// Env: APP_DISCARD_STALE_RESPONSES
	DiscardStaleResponses bool `env:"DISCARD_STALE_RESPONSES"`

	// LogFile is where the dashboard writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds the outbound connection settings for the device backend.
type Adapter struct {
	// HTTPAddress is the device backend address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SensorPollInterval is the period of the sensor refresh.
	// Env: WORKERS_SENSOR_POLL_INTERVAL
	SensorPollInterval time.Duration `env:"SENSOR_POLL_INTERVAL"`
}

// Metrics holds the prometheus endpoint settings. An empty address
// disables the endpoint.
type Metrics struct {
	// Address is the "host:port" the /metrics endpoint listens on.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Simulator holds settings of the development device simulator.
type Simulator struct {
	// Address is the "host:port" the simulator listens on.
	// Env: SIMULATOR_ADDRESS
	Address string `env:"ADDRESS"`

	// TickInterval is how often simulated readings evolve.
	// Env: SIMULATOR_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// FloodThreshold is the water level above which a sensor read logs a
	// flood event.
	// Env: SIMULATOR_FLOOD_THRESHOLD
	FloodThreshold float64 `env:"FLOOD_THRESHOLD"`

	// SensorFailureRate is the probability in [0,1] that a sensor read
	// fails like a lost serial link.
	// Env: SIMULATOR_SENSOR_FAILURE_RATE
	SensorFailureRate float64 `env:"SENSOR_FAILURE_RATE"`

	// Seed makes the simulation reproducible when non-zero.
	// Env: SIMULATOR_SEED
	Seed int64 `env:"SEED"`
}

// defaultConfig returns the built-in baseline every other source is merged on.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MessageLogCap:   models.MessageLogCap,
			EventKindFilter: models.EventKindFloodDetected,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultDeviceAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SensorPollInterval: DefaultSensorPollInterval,
		},
		Simulator: Simulator{
			Address:        DefaultSimulatorAddress,
			TickInterval:   DefaultSimulatorTick,
			FloodThreshold: DefaultFloodThreshold,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Later sources win for non-zero fields.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
