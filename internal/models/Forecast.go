package models

import "fmt"

// ForecastResult is the predicted AQI for a single target day.
type ForecastResult struct {
	Date      Date               `json:"date"`
	Mean      float64            `json:"mean"`
	Quantiles map[string]float64 `json:"quantiles"`
}

func (f *ForecastResult) String() string {
	return fmt.Sprintf("date: %s mean: %.2f quantiles: %v", f.Date, f.Mean, f.Quantiles)
}
