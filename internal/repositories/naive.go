package repositories

import (
	"context"
	"fmt"
	"math"

	"aqi-forecast/internal/models"
	"aqi-forecast/pkg/logger"
)

// NaivePredictor is an in-process baseline: the forecast is a weighted mean
// of the observed targets and quantiles assume normally distributed
// residuals. Meant for local runs without a model server.
type NaivePredictor struct {
	manifest PredictorManifest
	l        *logger.Logger
}

func NewNaivePredictor(manifest PredictorManifest, l *logger.Logger) (*NaivePredictor, error) {
	for _, w := range manifest.Weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v", ErrPredictorFailure, w)
		}
	}
	if manifest.ResidualStd < 0 {
		return nil, fmt.Errorf("%w: negative residual_std", ErrPredictorFailure)
	}

	return &NaivePredictor{manifest: manifest, l: l}, nil
}

func (p *NaivePredictor) Name() string {
	return p.manifest.Name
}

func (p *NaivePredictor) Predict(ctx context.Context, series models.TimeSeries) (models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return models.Prediction{}, fmt.Errorf("%w: %w", ErrPredictorFailure, err)
	}

	history := series.History()
	if len(history) == 0 {
		return models.Prediction{}, fmt.Errorf("%w: series has no observed targets", ErrPredictorFailure)
	}

	mean, err := p.weightedMean(history)
	if err != nil {
		return models.Prediction{}, err
	}

	var prediction models.Prediction
	step := 0
	for _, row := range series.Rows {
		if row.Target != nil {
			continue
		}
		step++

		spread := p.manifest.ResidualStd * math.Sqrt(float64(step))
		quantiles := make(map[string]float64, len(p.manifest.QuantileLevels))
		for _, q := range p.manifest.QuantileLevels {
			quantiles[QuantileLabel(q)] = mean + normalQuantile(q)*spread
		}

		prediction.Rows = append(prediction.Rows, models.PredictionRow{
			ItemID:    series.ItemID,
			Timestamp: row.Timestamp,
			Mean:      mean,
			Quantiles: quantiles,
		})
	}

	p.l.Debug("naive prediction computed", map[string]any{
		"predictor": p.Name(),
		"history":   len(history),
		"mean":      mean,
		"rows":      len(prediction.Rows),
	})

	return prediction, nil
}

// weightedMean applies the manifest weights to the most recent targets,
// oldest first. Without weights every target counts the same.
func (p *NaivePredictor) weightedMean(history []models.SeriesRow) (float64, error) {
	weights := p.manifest.Weights
	if len(weights) == 0 || len(weights) > len(history) {
		weights = make([]float64, len(history))
		for i := range weights {
			weights[i] = 1
		}
	}

	recent := history[len(history)-len(weights):]

	var sum, total float64
	for i, row := range recent {
		sum += weights[i] * *row.Target
		total += weights[i]
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: weights sum to zero", ErrPredictorFailure)
	}

	return sum / total, nil
}

// normalQuantile is the inverse CDF of the standard normal distribution.
func normalQuantile(q float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*q-1)
}
