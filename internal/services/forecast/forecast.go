package forecast

import (
	"context"

	"github.com/pkg/errors"

	"aqi-forecast/internal/models"
	"aqi-forecast/internal/repositories"
	"aqi-forecast/pkg/logger"
)

// HistoryDays is how many consecutive days before the target the model needs.
const HistoryDays = 3

var (
	ErrInsufficientHistory     = errors.New("insufficient history: data for the 3 days before the target date is required")
	ErrIncompleteHistoryWindow = errors.New("incomplete history: the 3 days before the target date must each have exactly one record")
)

// Service adapts daily observations to the forecasting model.
type Service struct {
	predictor repositories.Predictor
	l         *logger.Logger
}

func NewService(predictor repositories.Predictor, l *logger.Logger) *Service {
	return &Service{
		predictor: predictor,
		l:         l,
	}
}

// Forecast predicts the AQI of target from the three days before it.
// Observations outside that window are ignored.
func (s *Service) Forecast(ctx context.Context, target models.Date, observations []models.DailyObservation) (*models.ForecastResult, error) {
	series, err := BuildSeries(target, observations)
	if err != nil {
		s.l.Warning("cannot build forecast series", map[string]any{
			"target":       target.String(),
			"observations": len(observations),
			"err":          err.Error(),
		})
		return nil, err
	}

	s.l.Debug("requesting forecast", map[string]any{
		"predictor": s.predictor.Name(),
		"target":    target.String(),
		"rows":      len(series.Rows),
	})

	prediction, err := s.predictor.Predict(ctx, series)
	if err != nil {
		return nil, errors.Wrapf(err, "predict with %s", s.predictor.Name())
	}

	row, ok := prediction.Row(series.ItemID, target)
	if !ok {
		return nil, errors.Wrapf(repositories.ErrPredictorFailure, "no prediction for %s", target)
	}

	result := &models.ForecastResult{
		Date:      target,
		Mean:      row.Mean,
		Quantiles: row.Quantiles,
	}

	s.l.Info("forecast computed", map[string]any{
		"predictor": s.predictor.Name(),
		"result":    result.String(),
	})

	return result, nil
}

// BuildSeries selects the three days before target and appends a row for
// target itself with no target value.
func BuildSeries(target models.Date, observations []models.DailyObservation) (models.TimeSeries, error) {
	start := target.AddDays(-HistoryDays)
	if models.FilterByDate(observations, start) == -1 {
		return models.TimeSeries{}, ErrInsufficientHistory
	}

	var history []models.DailyObservation
	for _, o := range observations {
		if !o.Date.Before(start.Time) && o.Date.Before(target.Time) {
			history = append(history, o)
		}
	}
	if len(history) != HistoryDays {
		return models.TimeSeries{}, ErrIncompleteHistoryWindow
	}

	seen := make(map[string]struct{}, HistoryDays)
	for _, o := range history {
		seen[o.Date.String()] = struct{}{}
	}
	if len(seen) != HistoryDays {
		return models.TimeSeries{}, ErrIncompleteHistoryWindow
	}

	series := models.TimeSeries{ItemID: models.DefaultItemID}
	for i := 0; i < HistoryDays; i++ {
		day := start.AddDays(i)
		o := history[models.FilterByDate(history, day)]
		aqi := float64(o.AQI)
		series.Rows = append(series.Rows, models.SeriesRow{
			ItemID:    series.ItemID,
			Timestamp: day,
			Target:    &aqi,
			Features:  o.Features(),
		})
	}

	series.Rows = append(series.Rows, models.SeriesRow{
		ItemID:    series.ItemID,
		Timestamp: target,
	})

	return series, nil
}
