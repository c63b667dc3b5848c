// Package metrics exposes prometheus instrumentation for the dashboard sync
// loop.
//
// A nil *SyncMetrics is valid and records nothing, so callers never need to
// check whether metrics are enabled.
package metrics

import (
	"net/http"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	// OutcomeIgnored marks a result that arrived after teardown or was
	// discarded as stale.
	OutcomeIgnored = "ignored"
)

// Sensor label values.
const (
	SensorTemperature = "temperature"
	SensorHumidity    = "humidity"
	SensorWaterLevel  = "water_level"
)

// SyncMetrics holds the collectors of one dashboard instance on a private
// registry.
type SyncMetrics struct {
	registry *prometheus.Registry

	operations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	lastSuccess *prometheus.GaugeVec
	sensorValue *prometheus.GaugeVec
	actuatorOn  prometheus.Gauge
}

// NewSyncMetrics registers the sync collectors plus the Go runtime and
// process collectors on a fresh registry.
func NewSyncMetrics() *SyncMetrics {
	m := &SyncMetrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "operations_total",
			Help:      "Sync operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "operation_duration_seconds",
			Help:      "Round trip time of sync operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		lastSuccess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful operation.",
		}, []string{"operation"}),
		sensorValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sensor_value",
			Help:      "Last reading per sensor. Absent readings have no series.",
		}, []string{"sensor"}),
		actuatorOn: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "actuator_on",
			Help:      "1 when the last confirmed actuator state is on.",
		}),
	}

	m.registry.MustRegister(
		m.operations,
		m.duration,
		m.lastSuccess,
		m.sensorValue,
		m.actuatorOn,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the private registry.
func (m *SyncMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *SyncMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveOperation records one finished operation.
func (m *SyncMetrics) ObserveOperation(operation, outcome string, started time.Time) {
	if m == nil {
		return
	}

	m.operations.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	if outcome == OutcomeSuccess {
		m.lastSuccess.WithLabelValues(operation).SetToCurrentTime()
	}
}

// SetSensors mirrors a snapshot into the sensor gauges.
func (m *SyncMetrics) SetSensors(s models.SensorSnapshot) {
	if m == nil {
		return
	}

	m.setSensor(SensorTemperature, s.Temperature)
	m.setSensor(SensorHumidity, s.Humidity)
	m.setSensor(SensorWaterLevel, s.WaterLevel)
}

func (m *SyncMetrics) setSensor(name string, v *float64) {
	if v == nil {
		m.sensorValue.DeleteLabelValues(name)
		return
	}
	m.sensorValue.WithLabelValues(name).Set(*v)
}

// SetActuator mirrors the confirmed actuator state.
func (m *SyncMetrics) SetActuator(state models.ActuatorState) {
	if m == nil {
		return
	}

	if state.On {
		m.actuatorOn.Set(1)
		return
	}
	m.actuatorOn.Set(0)
}
