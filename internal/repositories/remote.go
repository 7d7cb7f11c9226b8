package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aqi-forecast/internal/models"
	"aqi-forecast/pkg/logger"
)

// RemotePredictor calls a model server that hosts the trained forecaster.
type RemotePredictor struct {
	manifest   PredictorManifest
	httpClient HTTPClient
	l          *logger.Logger
}

func NewRemotePredictor(manifest PredictorManifest, l *logger.Logger, httpClient HTTPClient) (*RemotePredictor, error) {
	if strings.TrimSpace(manifest.Endpoint) == "" {
		return nil, fmt.Errorf("%w: remote predictor endpoint cannot be empty", ErrPredictorFailure)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &RemotePredictor{
		manifest:   manifest,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (p *RemotePredictor) Name() string {
	return p.manifest.Name
}

type remotePredictRequest struct {
	ItemIDColumn     string             `json:"item_id_column"`
	TimestampColumn  string             `json:"timestamp_column"`
	Target           string             `json:"target"`
	PredictionLength int                `json:"prediction_length"`
	QuantileLevels   []float64          `json:"quantile_levels"`
	Rows             []models.SeriesRow `json:"rows"`
}

func (p *RemotePredictor) Predict(ctx context.Context, series models.TimeSeries) (models.Prediction, error) {
	var prediction models.Prediction

	payload, err := json.Marshal(remotePredictRequest{
		ItemIDColumn:     models.ItemIDColumn,
		TimestampColumn:  models.TimestampColumn,
		Target:           models.TargetColumn,
		PredictionLength: p.manifest.PredictionLength,
		QuantileLevels:   p.manifest.QuantileLevels,
		Rows:             series.Rows,
	})
	if err != nil {
		return prediction, fmt.Errorf("%w: failed to encode series: %w", ErrPredictorFailure, err)
	}

	p.l.Info("making predictor request", map[string]any{
		"predictor": p.Name(),
		"endpoint":  p.manifest.Endpoint,
		"rows":      len(series.Rows),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.manifest.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return prediction, fmt.Errorf("%w: failed to create request: %w", ErrPredictorFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return prediction, fmt.Errorf("%w: failed to do request: %w", ErrPredictorFailure, err)
	}
	defer resp.Body.Close()

	p.l.Info("received predictor response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return prediction, fmt.Errorf("%w: failed to read response body: %w", ErrPredictorFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return prediction, fmt.Errorf("%w: HTTP error (status %d): %s", ErrPredictorFailure, resp.StatusCode, resp.Status)
	}

	if err = json.Unmarshal(body, &prediction); err != nil {
		return prediction, fmt.Errorf("%w: failed to parse JSON response: %w", ErrPredictorFailure, err)
	}

	// single-series servers may leave the item id out
	for i := range prediction.Rows {
		if prediction.Rows[i].ItemID == "" {
			prediction.Rows[i].ItemID = series.ItemID
		}
	}

	p.l.Debug("parsed predictor response", map[string]any{
		"rows": len(prediction.Rows),
	})

	return prediction, nil
}
