// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/utils"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpDeviceAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpDeviceAdapter {
	t.Helper()
	adapterCfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPDeviceAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpDeviceAdapter)
}

func jsonHandler(t *testing.T, method, path string, status int, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, method, r.Method)
		assert.Equal(t, path, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPDeviceAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantURL string
		wantErr bool
	}{
		{"host and port", "localhost:5500", "http://localhost:5500", false},
		{"full url with slash", "http://192.168.1.4:5500/", "http://192.168.1.4:5500", false},
		{"https kept", "https://device.local", "https://device.local", false},
		{"empty", "  ", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPDeviceAdapter(config.Adapter{HTTPAddress: tt.address, RequestTimeout: time.Second}, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			h := a.(*httpDeviceAdapter)
			assert.Equal(t, tt.wantURL, h.client.BaseURL)
			assert.Equal(t, time.Second, h.client.GetClient().Timeout)
		})
	}
}

// ── GetSensors ───────────────────────────────────────────────────────────────

func TestGetSensors_Success(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/sensors", http.StatusOK,
		`{"temperature": 22.5, "humidity": "60", "waterLevel": 12}`))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetSensors(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got.Temperature)
	require.NotNil(t, got.Humidity)
	require.NotNil(t, got.WaterLevel)
	assert.InDelta(t, 22.5, *got.Temperature, 1e-9)
	assert.InDelta(t, 60.0, *got.Humidity, 1e-9)
	assert.InDelta(t, 12.0, *got.WaterLevel, 1e-9)
}

func TestGetSensors_PartialFields(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/sensors", http.StatusOK,
		`{"temperature": 22.5, "humidity": "abc"}`))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetSensors(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got.Temperature)
	assert.Nil(t, got.Humidity)
	assert.Nil(t, got.WaterLevel)
}

func TestGetSensors_ServerError(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/sensors", http.StatusInternalServerError,
		`{"error": "serial timeout"}`))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetSensors(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "serial timeout")
}

func TestGetSensors_Undecodable(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/sensors", http.StatusOK, `<html>`))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetSensors(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetSensors_NotAnObject(t *testing.T) {
	for _, body := range []string{`null`, ` null `, `[]`, `"22.5"`, `42`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/sensors", http.StatusOK, body))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetSensors(context.Background())

			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestGetSensors_EmptyObject(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/sensors", http.StatusOK, `{}`))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetSensors(context.Background())

	require.NoError(t, err)
	assert.True(t, got.Equal(models.SensorSnapshot{}))
}

func TestGetSensors_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GetSensors(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get sensors request")
}

func TestGetSensors_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPDeviceAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.GetSensors(context.Background())
	require.Error(t, err)
}

// ── GetEvents ────────────────────────────────────────────────────────────────

func TestGetEvents_Success(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/events", http.StatusOK,
		`{"events": [
			{"timestamp": "2026-03-01 10:00:00", "event": "Flood detected"},
			{"timestamp": 1700000000000, "event": "Door opened"}
		]}`))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Flood detected", got[0].Kind)
	assert.Equal(t, "Door opened", got[1].Kind)
	assert.Equal(t, int64(1700000000000), got[1].Timestamp.Time.UnixMilli())
}

func TestGetEvents_EmptyList(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/events", http.StatusOK, `{"events": []}`))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetEvents(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetEvents_MissingKey(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/events", http.StatusOK, `{"items": []}`))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetEvents(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetEvents_NotFound(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/events", http.StatusNotFound, ``))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetEvents(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetMessages ──────────────────────────────────────────────────────────────

func TestGetMessages_Success(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/messages", http.StatusOK,
		`{"messages": ["hi", "there"]}`))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetMessages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Message{"hi", "there"}, got)
}

func TestGetMessages_MissingKey(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodGet, "/messages", http.StatusOK, `{}`))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetMessages(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── SendMessage ──────────────────────────────────────────────────────────────

func TestSendMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send-message", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var req models.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "water the plants", req.Message)

		_, _ = w.Write([]byte(`{"status": "success", "message": "Message received"}`))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).SendMessage(context.Background(), "water the plants")

	assert.NoError(t, err)
}

func TestSendMessage_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"status error", http.StatusOK, `{"status": "error"}`, ErrNotAcknowledged},
		{"no status", http.StatusOK, `{}`, ErrNotAcknowledged},
		{"bad request", http.StatusBadRequest, `{"status":"error","message":"No message provided"}`, ErrBadRequest},
		{"not json", http.StatusOK, `ok`, ErrMalformedResponse},
		{"teapot", http.StatusTeapot, ``, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(jsonHandler(t, http.MethodPost, "/send-message", tt.status, tt.body))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).SendMessage(context.Background(), "x")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── SetActuator ──────────────────────────────────────────────────────────────

func TestSetActuator_Paths(t *testing.T) {
	tests := []struct {
		name string
		on   bool
		path string
	}{
		{"on", true, "/control/on"},
		{"off", false, "/control/off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(jsonHandler(t, http.MethodPost, tt.path, http.StatusOK,
				`{"status": "success", "action": "`+tt.name+`"}`))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).SetActuator(context.Background(), tt.on)

			assert.NoError(t, err)
		})
	}
}

func TestSetActuator_NotAcknowledged(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodPost, "/control/on", http.StatusOK, `{"status": "busy"}`))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).SetActuator(context.Background(), true)

	assert.ErrorIs(t, err, ErrNotAcknowledged)
}

// ── DeleteEvent ──────────────────────────────────────────────────────────────

func TestDeleteEvent_SendsIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/delete-event", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("index"))
		_, _ = w.Write([]byte(`{"status": "success", "message": "Event deleted"}`))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteEvent(context.Background(), 3)

	assert.NoError(t, err)
}

func TestDeleteEvent_BadIndex(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.MethodDelete, "/delete-event", http.StatusBadRequest,
		`{"status": "error", "message": "Invalid event index"}`))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteEvent(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── trace id ─────────────────────────────────────────────────────────────────

func TestRequest_TraceIDHeader(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(utils.TraceIDHeader))
		_, _ = w.Write([]byte(`{"messages": []}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.GetMessages(context.Background())
	require.NoError(t, err)
	_, err = a.GetMessages(utils.WithTraceID(context.Background(), "fixed-trace"))
	require.NoError(t, err)

	require.Len(t, got, 2)
	_, parseErr := uuid.Parse(got[0])
	assert.NoError(t, parseErr, "generated trace id must be a uuid")
	assert.Equal(t, "fixed-trace", got[1])
}
