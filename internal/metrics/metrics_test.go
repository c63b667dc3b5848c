package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation_CountsByOutcome(t *testing.T) {
	m := NewSyncMetrics()
	started := time.Now()

	m.ObserveOperation("refresh_sensors", OutcomeSuccess, started)
	m.ObserveOperation("refresh_sensors", OutcomeSuccess, started)
	m.ObserveOperation("refresh_sensors", OutcomeFailure, started)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("refresh_sensors", OutcomeSuccess)), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("refresh_sensors", OutcomeFailure)), 1e-9)
	assert.Positive(t, testutil.ToFloat64(m.lastSuccess.WithLabelValues("refresh_sensors")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestSetSensors_AbsentReadingsHaveNoSeries(t *testing.T) {
	m := NewSyncMetrics()

	m.SetSensors(models.SensorSnapshot{
		Temperature: models.Float(22.5),
		Humidity:    models.Float(60),
		WaterLevel:  models.Float(10),
	})
	assert.Equal(t, 3, testutil.CollectAndCount(m.sensorValue))
	assert.InDelta(t, 22.5, testutil.ToFloat64(m.sensorValue.WithLabelValues(SensorTemperature)), 1e-9)

	m.SetSensors(models.SensorSnapshot{Temperature: models.Float(23)})
	assert.Equal(t, 1, testutil.CollectAndCount(m.sensorValue))
}

func TestSetActuator(t *testing.T) {
	m := NewSyncMetrics()

	m.SetActuator(models.ActuatorState{On: true})
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.actuatorOn), 1e-9)

	m.SetActuator(models.ActuatorState{On: false})
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.actuatorOn), 1e-9)
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *SyncMetrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("x", OutcomeSuccess, time.Now())
		m.SetSensors(models.SensorSnapshot{})
		m.SetActuator(models.ActuatorState{On: true})
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := NewSyncMetrics()
	m.ObserveOperation("send_message", OutcomeFailure, time.Now())

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `dashboard_sync_operations_total{operation="send_message",outcome="failure"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
