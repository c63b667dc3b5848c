package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/utils"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

type httpDeviceAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPDeviceAdapter constructs an HTTP/JSON implementation of
// [DeviceAdapter]. It normalises the base URL from adapterCfg.HTTPAddress and
// bounds every request by adapterCfg.RequestTimeout.
//
// Returns [ErrInvalidAddress] (wrapped) if the address is empty or cannot be
// parsed as a URL.
func NewHTTPDeviceAdapter(adapterCfg config.Adapter, log *logger.Logger) (DeviceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	a := &httpDeviceAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
	a.client.OnAfterResponse(a.logResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a resty request bound to ctx and tagged with a trace ID,
// reusing the one already carried by ctx.
func (h *httpDeviceAdapter) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.ids.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, traceID)
}

func (h *httpDeviceAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("device response")
	return nil
}

// GetSensors implements [DeviceAdapter]. It issues GET /sensors and converts
// each reading independently, so one bad field never fails the call. A body
// that is not a JSON object returns [ErrMalformedResponse].
func (h *httpDeviceAdapter) GetSensors(ctx context.Context) (models.SensorSnapshot, error) {
	resp, err := h.request(ctx).Get("/sensors")
	if err != nil {
		return models.SensorSnapshot{}, fmt.Errorf("get sensors request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SensorSnapshot{}, err
	}

	// Missing keys are per-field N/A, but the body itself must be an object.
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(resp.Body(), &fields); err != nil {
		return models.SensorSnapshot{}, fmt.Errorf("%w: decode sensors: %w", ErrMalformedResponse, err)
	}
	if fields == nil {
		return models.SensorSnapshot{}, fmt.Errorf("%w: sensors body is not an object", ErrMalformedResponse)
	}

	var body models.SensorsResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.SensorSnapshot{}, fmt.Errorf("%w: decode sensors: %w", ErrMalformedResponse, err)
	}

	return body.Snapshot(), nil
}

// GetEvents implements [DeviceAdapter]. It issues GET /events.
func (h *httpDeviceAdapter) GetEvents(ctx context.Context) ([]models.Event, error) {
	resp, err := h.request(ctx).Get("/events")
	if err != nil {
		return nil, fmt.Errorf("get events request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.EventsResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode events: %w", ErrMalformedResponse, err)
	}
	if body.Events == nil {
		return nil, fmt.Errorf("%w: missing events key", ErrMalformedResponse)
	}

	return *body.Events, nil
}

// GetMessages implements [DeviceAdapter]. It issues GET /messages.
func (h *httpDeviceAdapter) GetMessages(ctx context.Context) ([]models.Message, error) {
	resp, err := h.request(ctx).Get("/messages")
	if err != nil {
		return nil, fmt.Errorf("get messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.MessagesResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode messages: %w", ErrMalformedResponse, err)
	}
	if body.Messages == nil {
		return nil, fmt.Errorf("%w: missing messages key", ErrMalformedResponse)
	}

	return models.MessagesFromStrings(*body.Messages), nil
}

// SendMessage implements [DeviceAdapter]. It POSTs {"message": text} to
// /send-message.
func (h *httpDeviceAdapter) SendMessage(ctx context.Context, text string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SendMessageRequest{Message: text}).
		Post("/send-message")
	if err != nil {
		return fmt.Errorf("send message request: %w", err)
	}

	return acknowledged(resp)
}

// SetActuator implements [DeviceAdapter]. It POSTs to /control/on or
// /control/off.
func (h *httpDeviceAdapter) SetActuator(ctx context.Context, on bool) error {
	resp, err := h.request(ctx).
		SetPathParam("action", string(models.ActionFor(on))).
		Post("/control/{action}")
	if err != nil {
		return fmt.Errorf("control request: %w", err)
	}

	return acknowledged(resp)
}

// DeleteEvent implements [DeviceAdapter]. It issues
// DELETE /delete-event?index=n.
func (h *httpDeviceAdapter) DeleteEvent(ctx context.Context, index int) error {
	resp, err := h.request(ctx).
		SetQueryParam("index", strconv.Itoa(index)).
		Delete("/delete-event")
	if err != nil {
		return fmt.Errorf("delete event request: %w", err)
	}

	return acknowledged(resp)
}

// acknowledged maps the status code and then requires a "success" status
// in the body.
func acknowledged(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	var ack models.StatusResponse
	if err := json.Unmarshal(resp.Body(), &ack); err != nil {
		return fmt.Errorf("%w: decode acknowledgment: %w", ErrMalformedResponse, err)
	}
	if !ack.Succeeded() {
		return fmt.Errorf("%w: status %q", ErrNotAcknowledged, ack.Status)
	}

	return nil
}
