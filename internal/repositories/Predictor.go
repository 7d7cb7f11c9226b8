package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"aqi-forecast/internal/models"
	"aqi-forecast/pkg/logger"
)

const (
	PredictorKindRemote = "remote"
	PredictorKindNaive  = "naive"

	manifestFile = "predictor.yaml"
)

var ErrPredictorFailure = errors.New("forecast model failure")

var defaultQuantileLevels = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Predictor forecasts the rows of a series that have no target value.
type Predictor interface {
	Name() string
	Predict(ctx context.Context, series models.TimeSeries) (models.Prediction, error)
}

// PredictorManifest describes a trained predictor stored on disk.
type PredictorManifest struct {
	Name             string    `yaml:"name"`
	Kind             string    `yaml:"kind"`
	Endpoint         string    `yaml:"endpoint,omitempty"`
	PredictionLength int       `yaml:"prediction_length"`
	QuantileLevels   []float64 `yaml:"quantile_levels"`
	Weights          []float64 `yaml:"weights,omitempty"`
	ResidualStd      float64   `yaml:"residual_std,omitempty"`
}

func (m *PredictorManifest) applyDefaults() {
	if m.Name == "" {
		m.Name = "aqi-daily"
	}
	if m.PredictionLength <= 0 {
		m.PredictionLength = 1
	}
	if len(m.QuantileLevels) == 0 {
		m.QuantileLevels = defaultQuantileLevels
	}
}

// LoadPredictor reads the predictor stored at path, which is either a
// directory holding predictor.yaml or the manifest file itself.
func LoadPredictor(path string, l *logger.Logger, httpClient HTTPClient) (Predictor, error) {
	manifestPath := path
	if info, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: stat predictor path %s: %w", ErrPredictorFailure, path, err)
	} else if info.IsDir() {
		manifestPath = filepath.Join(path, manifestFile)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read predictor manifest: %w", ErrPredictorFailure, err)
	}

	var manifest PredictorManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: parse predictor manifest: %w", ErrPredictorFailure, err)
	}
	manifest.applyDefaults()

	l.Info("loaded predictor manifest", map[string]any{
		"path":           manifestPath,
		"name":           manifest.Name,
		"kind":           manifest.Kind,
		"quantileLevels": manifest.QuantileLevels,
	})

	switch manifest.Kind {
	case PredictorKindRemote:
		return NewRemotePredictor(manifest, l, httpClient)
	case PredictorKindNaive:
		return NewNaivePredictor(manifest, l)
	default:
		return nil, fmt.Errorf("%w: unknown predictor kind %q", ErrPredictorFailure, manifest.Kind)
	}
}

// QuantileLabel formats a quantile level the way the model labels its output columns.
func QuantileLabel(level float64) string {
	return strconv.FormatFloat(level, 'g', -1, 64)
}
