package aqi

// Pollutant names a pollutant the index is computed from.
type Pollutant string

const (
	PM25 Pollutant = "pm25"
	PM10 Pollutant = "pm10"
	CO   Pollutant = "co"
	SO2  Pollutant = "so2"
	NO2  Pollutant = "no2"
	O3   Pollutant = "o3"
)

// AllPollutants lists pollutants in the order they are reported.
var AllPollutants = []Pollutant{PM25, PM10, CO, SO2, NO2, O3}

const (
	minConcentration = 0
	maxConcentration = 9999
)

// Breakpoint maps a concentration range to an AQI range. Both ends are inclusive.
type Breakpoint struct {
	AQILow   int
	AQIHigh  int
	ConcLow  float64
	ConcHigh float64
}

// Contains reports whether c falls inside the concentration range.
func (b Breakpoint) Contains(c float64) bool {
	return b.ConcLow <= c && c <= b.ConcHigh
}

// Table is the breakpoint table of a single pollutant plus the number of
// decimals concentrations are rounded to before lookup.
type Table struct {
	Decimals    int
	Breakpoints []Breakpoint
}

// EPA breakpoints (2024 revision for PM2.5).
var tables = map[Pollutant]Table{
	PM25: {Decimals: 1, Breakpoints: []Breakpoint{
		{0, 50, 0.0, 9.0},
		{51, 100, 9.1, 35.4},
		{101, 150, 35.5, 55.4},
		{151, 200, 55.5, 125.4},
		{201, 300, 125.5, 225.4},
		{301, 9999, 225.5, 9999},
	}},
	PM10: {Decimals: 0, Breakpoints: []Breakpoint{
		{0, 50, 0, 54},
		{51, 100, 55, 154},
		{101, 150, 155, 254},
		{151, 200, 255, 354},
		{201, 300, 355, 424},
		{301, 9999, 425, 9999},
	}},
	CO: {Decimals: 1, Breakpoints: []Breakpoint{
		{0, 50, 0.0, 4.4},
		{51, 100, 4.5, 9.4},
		{101, 150, 9.5, 12.4},
		{151, 200, 12.5, 15.4},
		{201, 300, 15.5, 30.4},
		{301, 9999, 30.5, 9999},
	}},
	SO2: {Decimals: 0, Breakpoints: []Breakpoint{
		{0, 50, 0, 35},
		{51, 100, 36, 75},
		{101, 150, 76, 185},
		{151, 200, 186, 304},
		{201, 300, 305, 604},
		{301, 9999, 605, 9999},
	}},
	NO2: {Decimals: 0, Breakpoints: []Breakpoint{
		{0, 50, 0, 53},
		{51, 100, 54, 100},
		{101, 150, 101, 360},
		{151, 200, 361, 649},
		{201, 300, 650, 1249},
		{301, 9999, 1250, 9999},
	}},
	O3: {Decimals: 3, Breakpoints: []Breakpoint{
		{0, 50, 0.0, 0.054},
		{51, 100, 0.055, 0.070},
		{101, 150, 0.071, 0.085},
		{151, 200, 0.086, 0.105},
		{201, 300, 0.106, 0.200},
		{301, 9999, 0.201, 9999.000},
	}},
}

// TableFor returns the breakpoint table of p.
func TableFor(p Pollutant) (Table, bool) {
	t, ok := tables[p]
	return t, ok
}
