// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/mock"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/workers"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices_WiresConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockDeviceAdapter(ctrl)

	cfg := &config.ClientConfig{
		App: config.App{
			MessageLogCap:         3,
			EventKindFilter:       "Leak detected",
			ClearErrorOnSuccess:   true,
			DiscardStaleResponses: true,
		},
		Workers: config.Workers{SensorPollInterval: 2 * time.Second},
	}

	services := NewClientServices(cfg, mockAdapter, nil, logger.Nop())
	require.NotNil(t, services.State)
	require.NotNil(t, services.SyncClient)

	opts := services.State.Options()
	assert.Equal(t, 3, opts.MessageCap)
	assert.Equal(t, "Leak detected", opts.EventKind)
	assert.True(t, opts.DiscardStale)

	c := services.SyncClient.(*syncClient)
	assert.True(t, c.opts.ClearErrorOnSuccess)
	assert.Equal(t, 2*time.Second, c.poller.(*workers.Periodic).Interval())

	// the service writes through the same state the UI reads
	mockAdapter.EXPECT().SetActuator(gomock.Any(), true).Return(nil)
	require.NoError(t, services.SyncClient.SetActuator(context.Background(), true))
	assert.Equal(t, models.ActuatorState{On: true}, services.State.Snapshot().Actuator)
}

func TestNewSensorPollJob_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := NewSyncClient(mock.NewMockDeviceAdapter(ctrl), nil, SyncClientOptions{}, nil, nil).(*syncClient)

	assert.Equal(t, workers.DefaultInterval, c.poller.(*workers.Periodic).Interval())
}
