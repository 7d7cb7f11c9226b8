package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aqi-forecast/config"
	v1 "aqi-forecast/internal/controllers/http/v1"
	"aqi-forecast/internal/repositories"
	"aqi-forecast/internal/services/forecast"
	"aqi-forecast/internal/services/prediction"
	"aqi-forecast/pkg/httpserver"
	"aqi-forecast/pkg/logger"
	"aqi-forecast/pkg/observe"
	"aqi-forecast/web"
)

// @title AQI Forecast API
// @version 1.0.0
// @description Predicts tomorrow's Air Quality Index for a city from its last three days of weather and pollutant readings.
// @description Each prediction comes with the EPA health category, display colors and an illustrative image.
// @termsOfService http://swagger.io/terms/

// @contact.name AQI Forecast Support
// @contact.url https://github.com/your-username/aqi-forecast

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Prediction
// @tag.description AQI forecast operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" && cnf.Log.Format != "console" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l := logger.New(cnf.App.Name, logger.Options{
		AppEnv: cnf.App.Env,
		Level:  cnf.Log.Level,
		Format: cnf.Log.Format,
	}, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	predictor, err := repositories.LoadPredictor(cnf.Predictor.Path, l, &http.Client{Timeout: cnf.PredictorTimeout()})
	if err != nil {
		l.Fatal("cannot load predictor", map[string]any{"path": cnf.Predictor.Path, "err": err})
	}

	images, err := newImageGenerator(cnf, l)
	if err != nil {
		l.Fatal("cannot init image generator", map[string]any{"kind": cnf.Image.Kind, "err": err})
	}

	views, err := web.LoadViews()
	if err != nil {
		l.Fatal("cannot load views", map[string]any{"err": err})
	}

	service := prediction.NewService(
		forecast.NewService(predictor, l),
		images,
		prediction.RealClock{},
		l,
	)

	readTimeout, writeTimeout, idleTimeout := cnf.Server.Timeouts()
	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		BodyLimit:    cnf.Server.BodyLimit,
	})

	v1.NewRouter(
		app,
		service,
		views,
		web.IndexData{AppName: cnf.App.Name, Version: cnf.App.Version, Cities: web.DefaultCities},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":      cnf.Server.Port,
		"env":       cnf.App.Env,
		"predictor": predictor.Name(),
		"images":    images.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		if hook != nil {
			hook.Flush()
		}
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}

func newImageGenerator(cnf *config.Config, l *logger.Logger) (repositories.ImageGenerator, error) {
	switch cnf.Image.Kind {
	case repositories.ImageKindOpenAI:
		return repositories.NewOpenAIImageGenerator(
			cnf.Image.APIKey,
			cnf.Image.BaseURL,
			cnf.Image.Model,
			cnf.Image.Size,
			l,
			&http.Client{Timeout: cnf.ImageTimeout()},
		)
	default:
		return repositories.NewStaticImageGenerator(cnf.Image.PlaceholderURL)
	}
}
