package config

import "fmt"

// ClientConfig is the dashboard's view of [StructuredConfig].
type ClientConfig struct {
	// App contains behaviour switches and logging settings.
	App App
	// Adapter contains the device address and request timeout.
	Adapter Adapter
	// Workers contains polling settings.
	Workers Workers
	// Metrics contains the optional prometheus endpoint.
	Metrics Metrics
}

// SimulatorConfig is the device simulator's view of [StructuredConfig].
type SimulatorConfig struct {
	// Simulator contains listen address and simulation tunables.
	Simulator Simulator
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates the dashboard configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetSimulatorConfig builds and validates the simulator configuration.
func GetSimulatorConfig() (*SimulatorConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	simCfg := newSimulatorConfig(cfg)
	return simCfg, simCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
		Metrics: cfg.Metrics,
	}
}

func newSimulatorConfig(cfg *StructuredConfig) *SimulatorConfig {
	return &SimulatorConfig{
		Simulator: cfg.Simulator,
		LogLevel:  cfg.App.LogLevel,
	}
}
