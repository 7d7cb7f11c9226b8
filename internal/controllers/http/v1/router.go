package http

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"

	_ "aqi-forecast/docs"
	"aqi-forecast/internal/models"
	"aqi-forecast/pkg/logger"
	"aqi-forecast/web"
)

// PredictionService runs the forecast pipeline for one request.
type PredictionService interface {
	Predict(ctx context.Context, req models.PredictRequest) (*models.PredictResponse, error)
}

type routes struct {
	service PredictionService
	views   *web.Views
	page    web.IndexData
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	predictionService PredictionService,
	views *web.Views,
	page web.IndexData,
	l *logger.Logger,
) {
	r := &routes{
		service: predictionService,
		views:   views,
		page:    page,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to read Swagger documentation"})
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(web.Static()),
	}))

	// Pages
	app.Get("/", r.handleIndex)
	app.Get("/search", r.handleSearchPage)
	app.Post("/search", r.handleSearch)

	// API routes
	app.Post("/predict", r.handlePredict)
}
