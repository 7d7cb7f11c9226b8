package aqi

import (
	"errors"
	"math"
	"strconv"
)

var (
	ErrAllPollutantsAbsent = errors.New("all pollutant concentrations are absent, cannot calculate AQI")
	ErrNoSubIndex          = errors.New("no pollutant concentration falls inside a breakpoint range")
)

// Pollutants holds concentrations by pollutant. A nil value means the
// pollutant was not measured.
type Pollutants map[Pollutant]*float64

// Calculate returns the overall AQI: the highest sub-index among the present
// pollutants. Concentrations falling outside every breakpoint range and
// unknown pollutants are skipped.
func Calculate(p Pollutants) (int, error) {
	absent := true
	for _, c := range p {
		if c != nil {
			absent = false
			break
		}
	}
	if absent {
		return 0, ErrAllPollutantsAbsent
	}

	result, found := 0, false
	for pollutant, c := range p {
		if c == nil {
			continue
		}

		idx, ok := SubIndex(pollutant, *c)
		if !ok {
			continue
		}

		if !found || idx > result {
			result = idx
			found = true
		}
	}

	if !found {
		return 0, ErrNoSubIndex
	}

	return result, nil
}

// SubIndex computes the AQI of a single pollutant. The concentration is
// clamped to [0, 9999] and rounded to the pollutant's precision first.
// ok is false for unknown pollutants and for values outside every range.
func SubIndex(p Pollutant, concentration float64) (aqi int, ok bool) {
	table, ok := TableFor(p)
	if !ok {
		return 0, false
	}

	c := roundTo(clamp(concentration), table.Decimals)

	for _, bp := range table.Breakpoints {
		if !bp.Contains(c) {
			continue
		}

		slope := float64(bp.AQIHigh-bp.AQILow) / (bp.ConcHigh - bp.ConcLow)
		v := slope*(c-bp.ConcLow) + float64(bp.AQILow)

		return int(math.RoundToEven(v)), true
	}

	return 0, false
}

func clamp(v float64) float64 {
	return math.Max(minConcentration, math.Min(maxConcentration, v))
}

// roundTo rounds the exact binary value of v to decimals places, ties to even.
func roundTo(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}
