// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncClient counts RefreshSensors calls.
type spySyncClient struct {
	SyncClient
	calls atomic.Int64
	err   error
}

func (s *spySyncClient) RefreshSensors(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func (s *spySyncClient) State() store.Snapshot { return store.Snapshot{} }

func TestSensorPollJob_CallsRefreshSensors(t *testing.T) {
	spy := &spySyncClient{}
	job := newSensorPollJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSensorPollJob_KeepsPollingOnError(t *testing.T) {
	spy := &spySyncClient{err: errors.New("device offline")}
	job := newSensorPollJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestSensorPollJob_Stop_StopsTicking(t *testing.T) {
	spy := &spySyncClient{}
	job := newSensorPollJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load(), "no ticks after Stop")
}

func TestSensorPollJob_ContextCancelStops(t *testing.T) {
	spy := &spySyncClient{}
	job := newSensorPollJob(spy, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())
}

func TestSensorPollJob_NoRunBeforeFirstInterval(t *testing.T) {
	spy := &spySyncClient{}
	job := newSensorPollJob(spy, time.Hour, logger.Nop())

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}
