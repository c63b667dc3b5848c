package service

import (
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/workers"
)

// sensorPollJobName labels the periodic sensor refresh in logs.
const sensorPollJobName = "sensor_poll"

// newSensorPollJob returns an idle periodic task that refreshes the sensors
// every interval. A failed refresh never stops the schedule and there is no
// backoff: the next tick is an independent attempt.
func newSensorPollJob(client SyncClient, interval time.Duration, log *logger.Logger) *workers.Periodic {
	return workers.NewPeriodic(sensorPollJobName, interval, client.RefreshSensors, log)
}
