// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Per-binary requirements
// live on the views, so the shared config only rejects a malformed log level.
func (cfg *StructuredConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(cfg.App.LogLevel)) {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return nil
	default:
		return ErrInvalidAppConfigs
	}
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SensorPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.MessageLogCap <= 0 || strings.TrimSpace(cfg.App.EventKindFilter) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *SimulatorConfig) validate() error {
	sim := cfg.Simulator
	if strings.TrimSpace(sim.Address) == "" || sim.TickInterval <= 0 {
		return ErrInvalidSimulatorConfigs
	}

	if sim.FloodThreshold < 0 || sim.SensorFailureRate < 0 || sim.SensorFailureRate > 1 {
		return ErrInvalidSimulatorConfigs
	}

	return nil
}
