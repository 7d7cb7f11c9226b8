package models

import (
	"aqi-forecast/internal/aqi"
)

// WeatherRecord is one day of weather observations and pollutant
// concentrations for a city.
type WeatherRecord struct {
	Date          Date          `json:"date" swaggertype:"string" example:"2026-10-16"`
	DewPoint      OptionalFloat `json:"dewp" swaggertype:"number" example:"25"`
	WindSpeed     OptionalFloat `json:"wdsp" swaggertype:"number" example:"12"`
	TempMax       OptionalFloat `json:"max" swaggertype:"number" example:"18"`
	TempMin       OptionalFloat `json:"min" swaggertype:"number" example:"9"`
	Precipitation OptionalFloat `json:"prcp" swaggertype:"number" example:"0"`
	CO            OptionalFloat `json:"co" swaggertype:"number" example:"0.3"`
	NO2           OptionalFloat `json:"no2" swaggertype:"number" example:"55"`
	O3            OptionalFloat `json:"o3" swaggertype:"number" example:"0.054"`
	PM10          OptionalFloat `json:"pm10" swaggertype:"number" example:"40"`
	PM25          OptionalFloat `json:"pm25" swaggertype:"number" example:"25"`
	SO2           OptionalFloat `json:"so2" swaggertype:"number" example:"17"`
}

// Pollutants returns the record's concentrations keyed for the AQI calculator.
func (r WeatherRecord) Pollutants() aqi.Pollutants {
	return aqi.Pollutants{
		aqi.PM25: r.PM25.Ptr(),
		aqi.PM10: r.PM10.Ptr(),
		aqi.CO:   r.CO.Ptr(),
		aqi.SO2:  r.SO2.Ptr(),
		aqi.NO2:  r.NO2.Ptr(),
		aqi.O3:   r.O3.Ptr(),
	}
}

// Features renames the record's columns to the names the forecasting model
// was trained on. Missing values are left out.
func (r WeatherRecord) Features() map[string]float64 {
	columns := map[string]OptionalFloat{
		"DEWP": r.DewPoint,
		"WDSP": r.WindSpeed,
		"MAX":  r.TempMax,
		"MIN":  r.TempMin,
		"PRCP": r.Precipitation,
		"co":   r.CO,
		"no2":  r.NO2,
		"o3":   r.O3,
		"pm10": r.PM10,
		"pm25": r.PM25,
		"so2":  r.SO2,
	}

	features := make(map[string]float64, len(columns))
	for name, v := range columns {
		if v.Valid {
			features[name] = v.Value
		}
	}
	return features
}

// DailyObservation is a weather record with the AQI computed for that day.
type DailyObservation struct {
	WeatherRecord
	AQI int
}

// FilterByDate returns the index of the observation with the matching date, or -1 if not found
func FilterByDate(data []DailyObservation, date Date) int {
	for i, o := range data {
		if o.Date.Equal(date.Time) {
			return i
		}
	}
	return -1
}
