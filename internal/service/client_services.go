package service

import (
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/adapter"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/metrics"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/store"
)

// ClientServices groups the dashboard's service layer.
type ClientServices struct {
	State      *store.DashboardState
	SyncClient SyncClient
}

// NewClientServices builds the state container and the sync client from cfg.
// m may be nil when metrics are disabled.
func NewClientServices(cfg *config.ClientConfig, deviceAdapter adapter.DeviceAdapter, m *metrics.SyncMetrics, log *logger.Logger) *ClientServices {
	state := store.NewDashboardState(store.Options{
		MessageCap:   cfg.App.MessageLogCap,
		EventKind:    cfg.App.EventKindFilter,
		DiscardStale: cfg.App.DiscardStaleResponses,
	})

	syncClient := NewSyncClient(deviceAdapter, state, SyncClientOptions{
		PollInterval:        cfg.Workers.SensorPollInterval,
		ClearErrorOnSuccess: cfg.App.ClearErrorOnSuccess,
	}, m, log)

	return &ClientServices{
		State:      state,
		SyncClient: syncClient,
	}
}
