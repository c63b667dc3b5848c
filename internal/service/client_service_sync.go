package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/adapter"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/app"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/metrics"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/store"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/workers"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

// Operation names used in logs and metrics.
const (
	OpRefreshSensors  = "refresh_sensors"
	OpRefreshEvents   = "refresh_events"
	OpRefreshMessages = "refresh_messages"
	OpSendMessage     = "send_message"
	OpSetActuator     = "set_actuator"
	OpDeleteEvent     = "delete_event"
)

// SyncClientOptions tunes a [SyncClient].
type SyncClientOptions struct {
	// PollInterval is the sensor refresh period.
	PollInterval time.Duration
	// ClearErrorOnSuccess clears the surfaced error after any successful
	// sensor refresh, event refresh or event deletion.
	ClearErrorOnSuccess bool
}

type syncClient struct {
	adapter adapter.DeviceAdapter
	state   store.DashboardStore
	metrics *metrics.SyncMetrics
	poller  workers.Worker
	opts    SyncClientOptions

	logger *logger.Logger

	startOnce sync.Once
	closeOnce sync.Once
	mu        sync.Mutex
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewSyncClient wires a SyncClient over deviceAdapter and state. m may be nil.
func NewSyncClient(
	deviceAdapter adapter.DeviceAdapter,
	state store.DashboardStore,
	opts SyncClientOptions,
	m *metrics.SyncMetrics,
	log *logger.Logger,
) SyncClient {
	if log == nil {
		log = logger.Nop()
	}

	c := &syncClient{
		adapter: deviceAdapter,
		state:   state,
		metrics: m,
		opts:    opts,
		logger:  log,
	}
	c.poller = newSensorPollJob(c, opts.PollInterval, log)

	return c
}

// Start implements [SyncClient].
func (c *syncClient) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		if c.state.Closed() {
			return
		}

		runCtx, cancel := context.WithCancel(ctx)
		c.mu.Lock()
		c.cancel = cancel
		c.mu.Unlock()

		for _, refresh := range []func(context.Context) error{
			c.RefreshSensors,
			c.RefreshEvents,
			c.RefreshMessages,
		} {
			c.wg.Add(1)
			go func() {
				defer c.wg.Done()
				_ = refresh(runCtx)
			}()
		}

		c.poller.Start(runCtx)
		c.logger.Info().Msg("sync client started")
	})
}

// Close implements [SyncClient]. The state is closed first so that calls
// cancelled by the teardown cannot write to it.
func (c *syncClient) Close() {
	c.closeOnce.Do(func() {
		c.state.Close()
		c.poller.Stop()

		c.mu.Lock()
		cancel := c.cancel
		c.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		c.wg.Wait()

		c.logger.Info().Msg("sync client closed")
	})
}

// RefreshSensors implements [SyncClient].
func (c *syncClient) RefreshSensors(ctx context.Context) error {
	if c.state.Closed() {
		return ErrClosed
	}

	started := time.Now()
	ticket := c.state.Begin(store.EntitySensors)

	snapshot, err := c.adapter.GetSensors(ctx)
	if err != nil {
		return c.fail(OpRefreshSensors, started, app.MsgSensorFetchFailed, fmt.Errorf("%w: %w", ErrSensorFetch, err))
	}

	if !c.state.ReplaceSensors(ticket, snapshot) {
		return c.notApplied(OpRefreshSensors, started)
	}

	c.metrics.SetSensors(snapshot)
	c.succeed(OpRefreshSensors, started, true)
	return nil
}

// RefreshEvents implements [SyncClient].
func (c *syncClient) RefreshEvents(ctx context.Context) error {
	if c.state.Closed() {
		return ErrClosed
	}

	started := time.Now()
	ticket := c.state.Begin(store.EntityEvents)

	events, err := c.adapter.GetEvents(ctx)
	if err != nil {
		return c.fail(OpRefreshEvents, started, app.MsgEventFetchFailed, fmt.Errorf("%w: %w", ErrEventFetch, err))
	}

	if !c.state.ReplaceEvents(ticket, events) {
		return c.notApplied(OpRefreshEvents, started)
	}

	c.succeed(OpRefreshEvents, started, true)
	return nil
}

// RefreshMessages implements [SyncClient].
func (c *syncClient) RefreshMessages(ctx context.Context) error {
	if c.state.Closed() {
		return ErrClosed
	}

	started := time.Now()
	ticket := c.state.Begin(store.EntityMessages)

	messages, err := c.adapter.GetMessages(ctx)
	if err != nil {
		return c.fail(OpRefreshMessages, started, "", fmt.Errorf("%w: %w", ErrMessageFetch, err))
	}

	if !c.state.ReplaceMessages(ticket, messages) {
		return c.notApplied(OpRefreshMessages, started)
	}

	c.succeed(OpRefreshMessages, started, false)
	return nil
}

// SendMessage implements [SyncClient]. Empty text is sent as is; the device
// decides whether to accept it.
func (c *syncClient) SendMessage(ctx context.Context, text string) error {
	if c.state.Closed() {
		return ErrClosed
	}

	started := time.Now()
	ticket := c.state.Begin(store.EntityMessages)

	if err := c.adapter.SendMessage(ctx, text); err != nil {
		return c.fail(OpSendMessage, started, "", fmt.Errorf("%w: %w", ErrMessageSend, err))
	}

	if !c.state.AppendMessage(ticket, models.Message(text)) {
		return c.notApplied(OpSendMessage, started)
	}
	c.state.ClearPendingMessage()

	c.succeed(OpSendMessage, started, false)
	return nil
}

// SetActuator implements [SyncClient].
func (c *syncClient) SetActuator(ctx context.Context, on bool) error {
	if c.state.Closed() {
		return ErrClosed
	}

	started := time.Now()
	ticket := c.state.Begin(store.EntityActuator)

	if err := c.adapter.SetActuator(ctx, on); err != nil {
		return c.fail(OpSetActuator, started, "", fmt.Errorf("%w: %w", ErrActuatorToggle, err))
	}

	state := models.ActuatorState{On: on}
	if !c.state.SetActuator(ticket, state) {
		return c.notApplied(OpSetActuator, started)
	}

	c.metrics.SetActuator(state)
	c.succeed(OpSetActuator, started, false)
	return nil
}

// DeleteEvent implements [SyncClient].
func (c *syncClient) DeleteEvent(ctx context.Context, displayIndex int) error {
	if c.state.Closed() {
		return ErrClosed
	}

	if stored, ok := c.state.StoredEventIndex(displayIndex); !ok || stored != displayIndex {
		ev := c.logger.Warn().
			Str("operation", OpDeleteEvent).
			Int("display_index", displayIndex)
		if ok {
			ev = ev.Int("stored_index", stored)
		}
		ev.Msg("filtered event position differs from stored position, deleting by display index")
	}

	started := time.Now()
	ticket := c.state.Begin(store.EntityEvents)

	if err := c.adapter.DeleteEvent(ctx, displayIndex); err != nil {
		return c.fail(OpDeleteEvent, started, app.MsgEventDeleteFailed, fmt.Errorf("%w: %w", ErrEventDelete, err))
	}

	if !c.state.RemoveEventAt(ticket, displayIndex) {
		if c.state.Closed() {
			return c.notApplied(OpDeleteEvent, started)
		}
		c.logger.Warn().
			Str("operation", OpDeleteEvent).
			Int("display_index", displayIndex).
			Msg("device confirmed delete but local event log has no such position")
		c.metrics.ObserveOperation(OpDeleteEvent, metrics.OutcomeIgnored, started)
		return ErrEventIndexOutOfRange
	}

	c.succeed(OpDeleteEvent, started, true)
	return nil
}

// SetPendingMessage implements [SyncClient].
func (c *syncClient) SetPendingMessage(text string) {
	c.state.SetPendingMessage(text)
}

// State implements [SyncClient].
func (c *syncClient) State() store.Snapshot {
	return c.state.Snapshot()
}

// Changes implements [SyncClient].
func (c *syncClient) Changes() <-chan struct{} {
	return c.state.Changes()
}

// fail records a failed operation. A non-empty surfaced message is written
// to the error slot. Failures after Close are only traced.
func (c *syncClient) fail(op string, started time.Time, surfaced string, err error) error {
	if c.state.Closed() {
		c.metrics.ObserveOperation(op, metrics.OutcomeIgnored, started)
		c.logger.Debug().Err(err).Str("operation", op).Msg("operation failed after close")
		return err
	}

	c.metrics.ObserveOperation(op, metrics.OutcomeFailure, started)
	c.logger.Error().
		Err(err).
		Str("operation", op).
		Str("reason", failureReason(err)).
		Dur("elapsed", time.Since(started)).
		Msg("device operation failed")

	if surfaced != "" {
		c.state.SetError(surfaced)
	}
	return err
}

// notApplied reports a result the state refused.
func (c *syncClient) notApplied(op string, started time.Time) error {
	c.metrics.ObserveOperation(op, metrics.OutcomeIgnored, started)

	if c.state.Closed() {
		c.logger.Debug().Str("operation", op).Msg("result ignored after close")
		return ErrClosed
	}

	c.logger.Debug().Str("operation", op).Msg("stale result discarded")
	return ErrStaleResponse
}

func (c *syncClient) succeed(op string, started time.Time, surfacedTier bool) {
	c.metrics.ObserveOperation(op, metrics.OutcomeSuccess, started)
	c.logger.Debug().Str("operation", op).Dur("elapsed", time.Since(started)).Msg("device operation succeeded")

	if surfacedTier && c.opts.ClearErrorOnSuccess {
		c.state.ClearError()
	}
}
