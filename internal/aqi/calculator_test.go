package aqi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestSubIndex_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		pollutant Pollutant
		conc      float64
		expected  int
	}{
		{"pm25 zero", PM25, 0, 0},
		{"pm25 top of good", PM25, 9.0, 50},
		{"pm25 bottom of moderate", PM25, 9.1, 51},
		{"pm25 top of moderate", PM25, 35.4, 100},
		{"pm25 bottom of hazardous", PM25, 225.5, 301},
		{"pm10 top of good", PM10, 54, 50},
		{"pm10 bottom of moderate", PM10, 55, 51},
		{"co top of good", CO, 4.4, 50},
		{"co bottom of moderate", CO, 4.5, 51},
		{"so2 bottom of sensitive", SO2, 76, 101},
		{"no2 top of unhealthy", NO2, 649, 200},
		{"o3 top of good", O3, 0.054, 50},
		{"o3 bottom of moderate", O3, 0.055, 51},
		{"o3 bottom of very unhealthy", O3, 0.106, 201},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SubIndex(tt.pollutant, tt.conc)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSubIndex_WithinPairedRange(t *testing.T) {
	for _, p := range AllPollutants {
		table, ok := TableFor(p)
		require.True(t, ok)

		for _, bp := range table.Breakpoints {
			for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
				c := bp.ConcLow + frac*(bp.ConcHigh-bp.ConcLow)
				c = roundTo(c, table.Decimals)
				if !bp.Contains(c) {
					continue
				}

				got, ok := SubIndex(p, c)
				require.True(t, ok, "%s %.3f", p, c)
				assert.GreaterOrEqual(t, got, bp.AQILow, "%s %.3f", p, c)
				assert.LessOrEqual(t, got, bp.AQIHigh, "%s %.3f", p, c)
			}
		}
	}
}

func TestSubIndex_ClampsAndRounds(t *testing.T) {
	got, ok := SubIndex(PM25, -12)
	require.True(t, ok)
	assert.Equal(t, 0, got)

	got, ok = SubIndex(PM10, 20000)
	require.True(t, ok)
	assert.Equal(t, 9999, got)

	// 54.4 rounds down to 54, the top of the good range
	got, ok = SubIndex(PM10, 54.4)
	require.True(t, ok)
	assert.Equal(t, 50, got)

	// 9.04 rounds to 9.0
	got, ok = SubIndex(PM25, 9.04)
	require.True(t, ok)
	assert.Equal(t, 50, got)
}

func TestSubIndex_HalfDecimalConcentrations(t *testing.T) {
	tests := []struct {
		pollutant     Pollutant
		concentration float64
		want          int
	}{
		// stored just above the half, so they round up
		{PM25, 9.05, 51},
		{CO, 4.45, 51},
		{PM25, 35.45, 101},
		{PM25, 125.45, 201},
		// stored just below the half
		{O3, 0.0545, 50},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %v", tt.pollutant, tt.concentration), func(t *testing.T) {
			got, ok := SubIndex(tt.pollutant, tt.concentration)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 35.5, roundTo(35.45, 1))
	assert.Equal(t, 0.12, roundTo(0.125, 2))
	assert.Equal(t, 42.0, roundTo(42.5, 0))
	assert.Equal(t, 0.054, roundTo(0.0545, 3))
}

func TestSubIndex_UnknownPollutant(t *testing.T) {
	_, ok := SubIndex(Pollutant("lead"), 1)
	assert.False(t, ok)
}

func TestCalculate_TakesMaximum(t *testing.T) {
	// pm25 7.2 -> 40, pm10 103 -> 75
	got, err := Calculate(Pollutants{
		PM25: ptr(7.2),
		PM10: ptr(103),
	})
	require.NoError(t, err)
	assert.Equal(t, 75, got)
}

func TestCalculate_IgnoresAbsent(t *testing.T) {
	got, err := Calculate(Pollutants{
		PM25: ptr(7.2),
		PM10: nil,
		CO:   nil,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, got)
}

func TestCalculate_AllAbsent(t *testing.T) {
	_, err := Calculate(Pollutants{
		PM25: nil,
		PM10: nil,
		CO:   nil,
		SO2:  nil,
		NO2:  nil,
		O3:   nil,
	})
	assert.ErrorIs(t, err, ErrAllPollutantsAbsent)

	_, err = Calculate(Pollutants{})
	assert.ErrorIs(t, err, ErrAllPollutantsAbsent)
}

func TestCalculate_NoSubIndex(t *testing.T) {
	_, err := Calculate(Pollutants{Pollutant("lead"): ptr(3)})
	assert.ErrorIs(t, err, ErrNoSubIndex)
}

func TestCalculate_SampleDay(t *testing.T) {
	// new-york sample row from the landing page: o3 0.086 is the worst
	got, err := Calculate(Pollutants{
		PM25: ptr(26),
		PM10: ptr(42),
		CO:   ptr(0.4),
		SO2:  ptr(42),
		NO2:  ptr(17),
		O3:   ptr(0.086),
	})
	require.NoError(t, err)
	assert.Equal(t, 151, got)
}
