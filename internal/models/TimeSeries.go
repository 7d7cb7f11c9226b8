package models

import (
	"encoding/json"
)

const (
	DefaultItemID   = "default"
	TimestampColumn = "timestamp"
	ItemIDColumn    = "item_id"
	TargetColumn    = "target"
)

// SeriesRow is one timestamped row of a forecast request. Target is nil for
// the rows the model is asked to predict.
type SeriesRow struct {
	ItemID    string
	Timestamp Date
	Target    *float64
	Features  map[string]float64
}

// MarshalJSON flattens the row into a single object keyed by column name.
func (r SeriesRow) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, len(r.Features)+3)
	for k, v := range r.Features {
		row[k] = v
	}
	row[ItemIDColumn] = r.ItemID
	row[TimestampColumn] = r.Timestamp.String()
	if r.Target != nil {
		row[TargetColumn] = *r.Target
	} else {
		row[TargetColumn] = nil
	}
	return json.Marshal(row)
}

// TimeSeries is a single-item series handed to the forecasting model.
type TimeSeries struct {
	ItemID string
	Rows   []SeriesRow
}

// Last returns the latest row of the series.
func (s TimeSeries) Last() (SeriesRow, bool) {
	if len(s.Rows) == 0 {
		return SeriesRow{}, false
	}
	return s.Rows[len(s.Rows)-1], true
}

// History returns the rows that carry a target value.
func (s TimeSeries) History() []SeriesRow {
	var rows []SeriesRow
	for _, r := range s.Rows {
		if r.Target != nil {
			rows = append(rows, r)
		}
	}
	return rows
}

// PredictionRow is the model output for one item and timestamp.
type PredictionRow struct {
	ItemID    string             `json:"item_id"`
	Timestamp Date               `json:"timestamp"`
	Mean      float64            `json:"mean"`
	Quantiles map[string]float64 `json:"quantiles"`
}

// Prediction is everything the model returned for a series.
type Prediction struct {
	Rows []PredictionRow `json:"predictions"`
}

// Row returns the prediction for the given item and day.
func (p Prediction) Row(itemID string, date Date) (PredictionRow, bool) {
	for _, r := range p.Rows {
		if r.ItemID == itemID && r.Timestamp.Equal(date.Time) {
			return r, true
		}
	}
	return PredictionRow{}, false
}
