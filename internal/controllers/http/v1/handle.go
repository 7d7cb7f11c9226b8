package http

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"aqi-forecast/internal/aqi"
	"aqi-forecast/internal/models"
	"aqi-forecast/internal/repositories"
	"aqi-forecast/internal/services/forecast"
	"aqi-forecast/web"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"insufficient history: data for the 3 days before the target date is required"`
}

// handlePredict godoc
// @Summary Forecast tomorrow's AQI
// @Description Computes the AQI of each submitted day, forecasts tomorrow's AQI from the last three days, classifies the health risk and generates an illustration
// @Tags Forecast
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "City and daily weather/pollutant readings"
// @Success 200 {object} models.PredictResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Malformed request body"
// @Failure 422 {object} ErrorResponse "Readings cannot be used for a forecast"
// @Failure 502 {object} ErrorResponse "Forecast model or image API failure"
// @Router /predict [post]
// @Example {curl} Example usage:
//
//	curl -X POST "http://localhost:8080/predict" -H "Content-Type: application/json" \
//	  -d '{"city": "paris", "weatherData": [{"date": "2026-10-16", "pm25": 22, ...}]}'
func (r *routes) handlePredict(c *fiber.Ctx) error {
	var req models.PredictRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		r.l.Warning("cannot decode predict request", map[string]any{
			"err":       err.Error(),
			"requestId": requestID(c),
		})

		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Malformed request body: " + decodeMessage(err),
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	resp, err := r.service.Predict(c.UserContext(), req)
	if err != nil {
		status, message := errorStatus(err)

		fields := map[string]any{
			"city":      req.City,
			"records":   len(req.WeatherData),
			"status":    status,
			"requestId": requestID(c),
		}
		if status >= fiber.StatusInternalServerError {
			r.l.Error(err, fields)
		} else {
			fields["err"] = err.Error()
			r.l.Warning("prediction rejected", fields)
		}

		return c.Status(status).JSON(ErrorResponse{
			Error: message,
		})
	}

	return c.JSON(resp)
}

// errorStatus maps pipeline failures to a status code and the message shown
// to the caller.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, repositories.ErrPredictorFailure):
		return fiber.StatusBadGateway, "Failed to forecast AQI"
	case errors.Is(err, repositories.ErrImageAPIFailure):
		return fiber.StatusBadGateway, "Failed to generate image"
	case errors.Is(err, models.ErrMalformedRequest):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, aqi.ErrAllPollutantsAbsent),
		errors.Is(err, aqi.ErrNoSubIndex),
		errors.Is(err, forecast.ErrInsufficientHistory),
		errors.Is(err, forecast.ErrIncompleteHistoryWindow):
		return fiber.StatusUnprocessableEntity, err.Error()
	default:
		return fiber.StatusInternalServerError, "Failed to predict AQI"
	}
}

func decodeMessage(err error) string {
	if errors.Is(err, models.ErrMalformedRequest) {
		return strings.TrimSuffix(err.Error(), ": "+models.ErrMalformedRequest.Error())
	}
	return err.Error()
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

func (r *routes) handleIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	if err := r.views.RenderIndex(c, &r.page); err != nil {
		r.l.Error(err, map[string]any{"page": "index"})
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render page")
	}
	return nil
}

func (r *routes) handleSearchPage(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	if err := r.views.RenderSearch(c, &web.SearchData{AppName: r.page.AppName}); err != nil {
		r.l.Error(err, map[string]any{"page": "search"})
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render page")
	}
	return nil
}

// handleSearch echoes the submitted query.
func (r *routes) handleSearch(c *fiber.Ctx) error {
	query, ok := formField(c, "query")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required form field: query",
		})
	}

	return c.SendString("You searched for: " + query)
}

// formField reports whether key was submitted, even with an empty value.
func formField(c *fiber.Ctx, key string) (string, bool) {
	if args := c.Request().PostArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}
	if form, err := c.MultipartForm(); err == nil {
		if values := form.Value[key]; len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}
