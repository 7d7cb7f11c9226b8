package forecast_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqi-forecast/internal/models"
	"aqi-forecast/internal/repositories"
	"aqi-forecast/internal/services/forecast"
	"aqi-forecast/pkg/logger"
)

// MockPredictor implements repositories.Predictor for testing
type MockPredictor struct {
	shouldFail bool
	prediction *models.Prediction
	received   models.TimeSeries
	callCount  int
}

func (m *MockPredictor) Name() string {
	return "mock-predictor"
}

func (m *MockPredictor) Predict(ctx context.Context, series models.TimeSeries) (models.Prediction, error) {
	m.callCount++
	m.received = series

	if m.shouldFail {
		return models.Prediction{}, errors.Join(repositories.ErrPredictorFailure, errors.New("mock predictor error"))
	}
	if m.prediction != nil {
		return *m.prediction, nil
	}

	last, _ := series.Last()
	return models.Prediction{Rows: []models.PredictionRow{{
		ItemID:    series.ItemID,
		Timestamp: last.Timestamp,
		Mean:      87.4,
		Quantiles: map[string]float64{"0.1": 70, "0.9": 105},
	}}}, nil
}

var target = models.NewDate(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

func observation(offset, aqi int) models.DailyObservation {
	return models.DailyObservation{
		WeatherRecord: models.WeatherRecord{
			Date:     target.AddDays(offset),
			DewPoint: models.Float(20),
			PM25:     models.Float(25),
		},
		AQI: aqi,
	}
}

func threeDays() []models.DailyObservation {
	return []models.DailyObservation{observation(-3, 60), observation(-2, 90), observation(-1, 120)}
}

func TestService_Forecast_Success(t *testing.T) {
	predictor := &MockPredictor{}
	service := forecast.NewService(predictor, logger.NewZapLogger("test-app"))

	result, err := service.Forecast(context.Background(), target, threeDays())
	require.NoError(t, err)

	assert.Equal(t, target, result.Date)
	assert.InDelta(t, 87.4, result.Mean, 1e-9)
	assert.Equal(t, map[string]float64{"0.1": 70, "0.9": 105}, result.Quantiles)
	assert.Equal(t, 1, predictor.callCount)
}

func TestService_Forecast_SeriesShape(t *testing.T) {
	predictor := &MockPredictor{}
	service := forecast.NewService(predictor, logger.NewZapLogger("test-app"))

	// unordered input with extra days outside the window
	observations := []models.DailyObservation{
		observation(-1, 120), observation(-5, 10), observation(-3, 60), observation(0, 999), observation(-2, 90),
	}

	_, err := service.Forecast(context.Background(), target, observations)
	require.NoError(t, err)

	series := predictor.received
	assert.Equal(t, models.DefaultItemID, series.ItemID)
	require.Len(t, series.Rows, 4)

	expectedTargets := []float64{60, 90, 120}
	for i, row := range series.Rows[:3] {
		assert.Equal(t, target.AddDays(i-3), row.Timestamp)
		require.NotNil(t, row.Target)
		assert.Equal(t, expectedTargets[i], *row.Target)
		assert.Equal(t, 20.0, row.Features["DEWP"])
		assert.Equal(t, 25.0, row.Features["pm25"])
	}

	last := series.Rows[3]
	assert.Equal(t, target, last.Timestamp)
	assert.Nil(t, last.Target)
}

func TestService_Forecast_InsufficientHistory(t *testing.T) {
	predictor := &MockPredictor{}
	service := forecast.NewService(predictor, logger.NewZapLogger("test-app"))

	observations := []models.DailyObservation{observation(-2, 90), observation(-1, 120)}

	_, err := service.Forecast(context.Background(), target, observations)
	assert.ErrorIs(t, err, forecast.ErrInsufficientHistory)
	assert.Equal(t, 0, predictor.callCount)
}

func TestService_Forecast_IncompleteWindow(t *testing.T) {
	predictor := &MockPredictor{}
	service := forecast.NewService(predictor, logger.NewZapLogger("test-app"))

	// day -2 missing
	_, err := service.Forecast(context.Background(), target, []models.DailyObservation{observation(-3, 60), observation(-1, 120)})
	assert.ErrorIs(t, err, forecast.ErrIncompleteHistoryWindow)

	// day -1 duplicated in place of day -2
	_, err = service.Forecast(context.Background(), target, []models.DailyObservation{observation(-3, 60), observation(-1, 120), observation(-1, 130)})
	assert.ErrorIs(t, err, forecast.ErrIncompleteHistoryWindow)

	// day -3 duplicated
	_, err = service.Forecast(context.Background(), target, []models.DailyObservation{observation(-3, 60), observation(-3, 61), observation(-2, 90), observation(-1, 120)})
	assert.ErrorIs(t, err, forecast.ErrIncompleteHistoryWindow)

	assert.Equal(t, 0, predictor.callCount)
}

func TestService_Forecast_PredictorFailure(t *testing.T) {
	predictor := &MockPredictor{shouldFail: true}
	service := forecast.NewService(predictor, logger.NewZapLogger("test-app"))

	_, err := service.Forecast(context.Background(), target, threeDays())
	assert.ErrorIs(t, err, repositories.ErrPredictorFailure)
}

func TestService_Forecast_NoRowForTarget(t *testing.T) {
	predictor := &MockPredictor{prediction: &models.Prediction{Rows: []models.PredictionRow{
		{ItemID: models.DefaultItemID, Timestamp: target.AddDays(1), Mean: 50},
	}}}
	service := forecast.NewService(predictor, logger.NewZapLogger("test-app"))

	_, err := service.Forecast(context.Background(), target, threeDays())
	assert.ErrorIs(t, err, repositories.ErrPredictorFailure)
}

func TestService_Forecast_WithNaivePredictor(t *testing.T) {
	naive, err := repositories.NewNaivePredictor(repositories.PredictorManifest{
		Name:           "naive",
		QuantileLevels: []float64{0.5},
	}, logger.NewZapLogger("test-app"))
	require.NoError(t, err)

	service := forecast.NewService(naive, logger.NewZapLogger("test-app"))

	result, err := service.Forecast(context.Background(), target, threeDays())
	require.NoError(t, err)
	assert.InDelta(t, 90.0, result.Mean, 1e-9)
	assert.InDelta(t, 90.0, result.Quantiles["0.5"], 1e-9)
}
