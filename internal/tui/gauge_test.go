package tui

import (
	"testing"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		value float64
		want  GaugeBand
	}{
		{-20, BandCold},
		{0, BandCold},
		{9.9, BandCold},
		{10, BandCool},
		{24.9, BandCool},
		{25, BandWarm},
		{34.9, BandWarm},
		{35, BandHot},
		{100, BandHot},
		{250, BandHot},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.value), "value %v", tt.value)
	}
}

func TestClampGauge(t *testing.T) {
	assert.Equal(t, 0.0, ClampGauge(-5))
	assert.Equal(t, 42.0, ClampGauge(42))
	assert.Equal(t, 100.0, ClampGauge(180))
}

func TestFormatReading(t *testing.T) {
	assert.Equal(t, "22.5°C", FormatReading(models.Float(22.5), "°C"))
	assert.Equal(t, "60%", FormatReading(models.Float(60), "%"))
	assert.Equal(t, "0%", FormatReading(models.Float(0), "%"))
	assert.Equal(t, "N/A", FormatReading(nil, "%"))
}

func TestRenderGauge(t *testing.T) {
	assert.Empty(t, renderGauge(nil, false))
	assert.Equal(t, "[██████████░░░░░░░░░░]", renderGauge(models.Float(50), false))
	assert.Equal(t, "[░░░░░░░░░░░░░░░░░░░░]", renderGauge(models.Float(-3), false))
	assert.Equal(t, "[████████████████████]", renderGauge(models.Float(130), false))
}

func TestReadingsText(t *testing.T) {
	s := models.SensorSnapshot{Temperature: models.Float(22.5), Humidity: models.Float(60)}

	assert.Equal(t, "Temperature: 22.5°C, Humidity: 60%, Water level: N/A", readingsText(s))
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "cold", BandCold.String())
	assert.Equal(t, "hot", BandHot.String())
}
