// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

// GaugeBand is the colour band of a gauge value.
type GaugeBand int

const (
	BandCold GaugeBand = iota
	BandCool
	BandWarm
	BandHot
)

func (b GaugeBand) String() string {
	switch b {
	case BandCold:
		return "cold"
	case BandCool:
		return "cool"
	case BandWarm:
		return "warm"
	default:
		return "hot"
	}
}

var bandColors = map[GaugeBand]lipgloss.Color{
	BandCold: lipgloss.Color("12"), // blue
	BandCool: lipgloss.Color("10"), // green
	BandWarm: lipgloss.Color("11"), // yellow
	BandHot:  lipgloss.Color("9"),  // red
}

const gaugeWidth = 20

// ClampGauge limits v to the gauge scale [0, 100].
func ClampGauge(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

// BandFor classifies a gauge value after clamping it.
func BandFor(v float64) GaugeBand {
	v = ClampGauge(v)
	switch {
	case v < 10:
		return BandCold
	case v < 25:
		return BandCool
	case v < 35:
		return BandWarm
	default:
		return BandHot
	}
}

// FormatReading renders a reading with its unit, or "N/A" when absent.
func FormatReading(v *float64, unit string) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + unit
}

// renderGauge draws a horizontal bar. Absent readings draw no bar.
func renderGauge(v *float64, colored bool) string {
	if v == nil {
		return ""
	}

	value := ClampGauge(*v)
	filled := int(math.Round(value / 100 * gaugeWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)

	if colored {
		bar = lipgloss.NewStyle().Foreground(bandColors[BandFor(value)]).Render(bar)
	}
	return "[" + bar + "]"
}

// readingsText is the plain-text form copied to the clipboard.
func readingsText(s models.SensorSnapshot) string {
	return fmt.Sprintf("Temperature: %s, Humidity: %s, Water level: %s",
		FormatReading(s.Temperature, "°C"),
		FormatReading(s.Humidity, "%"),
		FormatReading(s.WaterLevel, "%"),
	)
}
