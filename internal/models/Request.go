package models

import (
	"strings"

	"github.com/pkg/errors"
)

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	City        string          `json:"city" example:"new-york"`
	WeatherData []WeatherRecord `json:"weatherData"`
}

func (r *PredictRequest) Validate() error {
	r.City = strings.TrimSpace(r.City)
	if r.City == "" {
		return errors.Wrap(ErrMalformedRequest, "city is required")
	}
	if len(r.WeatherData) == 0 {
		return errors.Wrap(ErrMalformedRequest, "weatherData is required")
	}
	for i, rec := range r.WeatherData {
		if rec.Date.IsZero() {
			return errors.Wrapf(ErrMalformedRequest, "weatherData[%d].date is required", i)
		}
	}
	return nil
}
