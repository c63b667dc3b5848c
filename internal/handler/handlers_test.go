package handler

import (
	"testing"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/config"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/simulator"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSimulatorConfig(address string) config.Simulator {
	return config.Simulator{Address: address, TickInterval: time.Hour, FloodThreshold: 30}
}

func TestNewHandlers(t *testing.T) {
	cfg := testSimulatorConfig("localhost:5500")
	device := simulator.NewDevice(cfg, logger.Nop())

	h, err := NewHandlers(device, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := testSimulatorConfig("")
	device := simulator.NewDevice(cfg, logger.Nop())

	h, err := NewHandlers(device, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_NoDevice(t *testing.T) {
	h, err := NewHandlers(nil, testSimulatorConfig("localhost:5500"), models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
