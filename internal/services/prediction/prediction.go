package prediction

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"aqi-forecast/internal/aqi"
	"aqi-forecast/internal/models"
	"aqi-forecast/internal/repositories"
	"aqi-forecast/pkg/logger"
)

// Forecaster predicts the AQI of a target day from the days before it.
type Forecaster interface {
	Forecast(ctx context.Context, target models.Date, observations []models.DailyObservation) (*models.ForecastResult, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Service runs the whole pipeline behind POST /predict: per-day AQI,
// next-day forecast, health category, and illustration.
type Service struct {
	forecaster Forecaster
	images     repositories.ImageGenerator
	clock      Clock
	l          *logger.Logger
}

func NewService(forecaster Forecaster, images repositories.ImageGenerator, clock Clock, l *logger.Logger) *Service {
	if clock == nil {
		clock = RealClock{}
	}
	return &Service{
		forecaster: forecaster,
		images:     images,
		clock:      clock,
		l:          l,
	}
}

// Predict forecasts tomorrow's AQI for the city.
func (s *Service) Predict(ctx context.Context, req models.PredictRequest) (*models.PredictResponse, error) {
	observations, err := Observations(req.WeatherData)
	if err != nil {
		return nil, err
	}

	target := models.NewDate(s.clock.Now()).AddDays(1)

	s.l.Info("starting AQI prediction", map[string]any{
		"city":    req.City,
		"target":  target.String(),
		"records": len(observations),
	})

	result, err := s.forecaster.Forecast(ctx, target, observations)
	if err != nil {
		return nil, errors.Wrapf(err, "forecast AQI for %s", req.City)
	}

	predicted := int(math.RoundToEven(result.Mean))
	category := aqi.Classify(predicted)

	imageURL, err := s.images.Generate(ctx, repositories.ImagePrompt(req.City, predicted, category))
	if err != nil {
		return nil, errors.Wrapf(err, "generate image for %s", req.City)
	}

	s.l.Info("completed AQI prediction", map[string]any{
		"city":      req.City,
		"target":    target.String(),
		"aqi":       predicted,
		"category":  category.Label,
		"quantiles": result.Quantiles,
	})

	return &models.PredictResponse{
		Date:         target.String(),
		AQI:          fmt.Sprintf("%d (%s)", predicted, category.Label),
		HealthyColor: category.Color,
		FontColor:    category.FontColor(),
		ImageURL:     imageURL,
	}, nil
}

// Observations computes the AQI of every record.
func Observations(records []models.WeatherRecord) ([]models.DailyObservation, error) {
	observations := make([]models.DailyObservation, 0, len(records))
	for _, rec := range records {
		value, err := aqi.Calculate(rec.Pollutants())
		if err != nil {
			return nil, errors.Wrapf(err, "calculate AQI for %s", rec.Date)
		}
		observations = append(observations, models.DailyObservation{WeatherRecord: rec, AQI: value})
	}
	return observations, nil
}
