package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from os.Args.
//
// Flags:
//
//	-a device backend address, host:port or URL
//	-t request timeout (e.g., "5s")
//	-p sensor poll interval (e.g., "5s")
//	-c/-config json file path with configs
//	-message-cap local message log cap
//	-event-kind event kind shown in the event list
//	-clear-error-on-success clear the error banner after a successful operation
//	-discard-stale drop refreshes overtaken by a newer write
//	-log-file dashboard log file path
//	-log-level zerolog level name
//	-metrics-address prometheus endpoint in format [host]:[port]
//	-sim-address simulator listen address in format [host]:[port]
//	-sim-tick simulator tick interval
//	-flood-threshold simulator flood threshold
//	-failure-rate simulator sensor failure probability
//	-seed simulator random seed
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)

	var metricsAddress, simAddress NetAddress
	var deviceAddress string
	var requestTimeout, pollInterval, simTick time.Duration
	var jsonConfigPath string
	var messageCap int
	var eventKind string
	var clearErrorOnSuccess, discardStale bool
	var logFile, logLevel string
	var floodThreshold, failureRate float64
	var seed int64

	fs.StringVar(&deviceAddress, "a", "", "Device backend address host:port or URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	fs.DurationVar(&pollInterval, "p", 0, "Sensor poll interval (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&messageCap, "message-cap", 0, "Local message log cap")
	fs.StringVar(&eventKind, "event-kind", "", "Event kind shown in the event list")
	fs.BoolVar(&clearErrorOnSuccess, "clear-error-on-success", false, "Clear the error after a successful operation")
	fs.BoolVar(&discardStale, "discard-stale", false, "Drop refreshes overtaken by a newer write")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Var(&metricsAddress, "metrics-address", "Metrics endpoint host:port")
	fs.Var(&simAddress, "sim-address", "Simulator listen address host:port")
	fs.DurationVar(&simTick, "sim-tick", 0, "Simulator tick interval")
	fs.Float64Var(&floodThreshold, "flood-threshold", 0, "Simulator flood threshold")
	fs.Float64Var(&failureRate, "failure-rate", 0, "Simulator sensor failure probability")
	fs.Int64Var(&seed, "seed", 0, "Simulator random seed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			MessageLogCap:         messageCap,
			EventKindFilter:       eventKind,
			ClearErrorOnSuccess:   clearErrorOnSuccess,
			DiscardStaleResponses: discardStale,
			LogFile:               logFile,
			LogLevel:              logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    deviceAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SensorPollInterval: pollInterval,
		},
		Metrics: Metrics{
			Address: metricsAddress.String(),
		},
		Simulator: Simulator{
			Address:           simAddress.String(),
			TickInterval:      simTick,
			FloodThreshold:    floodThreshold,
			SensorFailureRate: failureRate,
			Seed:              seed,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
