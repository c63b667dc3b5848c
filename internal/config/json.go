package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// config file.
type StructuredJSONConfig struct {
	App struct {
		MessageLogCap         int    `json:"message_log_cap"`
		EventKindFilter       string `json:"event_kind_filter"`
		ClearErrorOnSuccess   bool   `json:"clear_error_on_success"`
		DiscardStaleResponses bool   `json:"discard_stale_responses"`
		LogFile               string `json:"log_file"`
		LogLevel              string `json:"log_level"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SensorPollInterval Duration `json:"sensor_poll_interval"`
	} `json:"workers,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`

	Simulator struct {
		Address           string   `json:"address"`
		TickInterval      Duration `json:"tick_interval"`
		FloodThreshold    float64  `json:"flood_threshold"`
		SensorFailureRate float64  `json:"sensor_failure_rate"`
		Seed              int64    `json:"seed"`
	} `json:"simulator,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			MessageLogCap:         jsonCfg.App.MessageLogCap,
			EventKindFilter:       jsonCfg.App.EventKindFilter,
			ClearErrorOnSuccess:   jsonCfg.App.ClearErrorOnSuccess,
			DiscardStaleResponses: jsonCfg.App.DiscardStaleResponses,
			LogFile:               jsonCfg.App.LogFile,
			LogLevel:              jsonCfg.App.LogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SensorPollInterval: time.Duration(jsonCfg.Workers.SensorPollInterval),
		},
		Metrics: Metrics{
			Address: jsonCfg.Metrics.Address,
		},
		Simulator: Simulator{
			Address:           jsonCfg.Simulator.Address,
			TickInterval:      time.Duration(jsonCfg.Simulator.TickInterval),
			FloodThreshold:    jsonCfg.Simulator.FloodThreshold,
			SensorFailureRate: jsonCfg.Simulator.SensorFailureRate,
			Seed:              jsonCfg.Simulator.Seed,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "5s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
