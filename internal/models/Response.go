package models

// PredictResponse is the body returned by POST /predict.
type PredictResponse struct {
	Date         string `json:"date" example:"2026-10-19"`
	AQI          string `json:"aqi" example:"87 (Moderate)"`
	HealthyColor string `json:"healthyColor" example:"Yellow"`
	FontColor    string `json:"fontColor" example:"black"`
	ImageURL     string `json:"imageUrl" example:"https://example.com/aqi.png"`
}
