package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorsResponse_Snapshot(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		temp    *float64
		hum     *float64
		water   *float64
		wantErr bool
	}{
		{
			name:  "numbers",
			body:  `{"temperature": 22.5, "humidity": 60, "waterLevel": 10}`,
			temp:  Float(22.5),
			hum:   Float(60),
			water: Float(10),
		},
		{
			name:  "numeric strings are coerced",
			body:  `{"temperature": "21.25", "humidity": " 55 ", "waterLevel": "0"}`,
			temp:  Float(21.25),
			hum:   Float(55),
			water: Float(0),
		},
		{
			name:  "missing field stays absent",
			body:  `{"temperature": 19, "humidity": 40}`,
			temp:  Float(19),
			hum:   Float(40),
			water: nil,
		},
		{
			name: "garbage values stay absent",
			body: `{"temperature": "hot", "humidity": null, "waterLevel": true}`,
		},
		{
			name: "empty object",
			body: `{}`,
		},
		{
			name:    "not an object",
			body:    `[1, 2, 3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp SensorsResponse
			err := json.Unmarshal([]byte(tt.body), &resp)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			snap := resp.Snapshot()
			assert.Equal(t, tt.temp, snap.Temperature)
			assert.Equal(t, tt.hum, snap.Humidity)
			assert.Equal(t, tt.water, snap.WaterLevel)
		})
	}
}

func TestSensorSnapshot_CloneIsDeep(t *testing.T) {
	orig := SensorSnapshot{Temperature: Float(20)}
	cp := orig.Clone()

	*cp.Temperature = 99

	assert.Equal(t, 20.0, *orig.Temperature)
	assert.Nil(t, cp.Humidity)
}

func TestSensorSnapshot_Equal(t *testing.T) {
	a := SensorSnapshot{Temperature: Float(1), Humidity: nil, WaterLevel: Float(3)}
	b := SensorSnapshot{Temperature: Float(1), Humidity: nil, WaterLevel: Float(3)}
	c := SensorSnapshot{Temperature: Float(1), Humidity: Float(0), WaterLevel: Float(3)}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "absent must differ from zero")
	assert.True(t, SensorSnapshot{}.IsEmpty())
	assert.False(t, a.IsEmpty())
}

func TestReading_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(SensorsResponse{Temperature: NewReading(22.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"temperature":22.5,"humidity":null,"waterLevel":null}`, string(b))
}
