// Package config provides configuration loading, merging, and validation
// for the dashboard client and the device simulator.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] for the dashboard and
// [GetSimulatorConfig] for the simulator. Both derive their view from
// [GetStructuredConfig].
package config
