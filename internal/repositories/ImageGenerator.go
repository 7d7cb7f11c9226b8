package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"aqi-forecast/internal/aqi"
	"aqi-forecast/pkg/logger"
)

const (
	ImageKindOpenAI = "openai"
	ImageKindStatic = "static"

	DefaultImageModel = "cogview-3-plus"
)

var ErrImageAPIFailure = errors.New("image generation failure")

// ImageGenerator turns a prompt into the URL of a generated picture.
type ImageGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImagePrompt describes the picture to generate for a city's forecast.
func ImagePrompt(city string, value int, category aqi.Category) string {
	return fmt.Sprintf(
		"Using the most famous landmark in downtown %s as the background, generate a picture of a day "+
			"with an air quality index of %d, which is %s for people. "+
			"Add the text \"AQI: %d %s\" to the picture in Arial font, on a %s background.",
		city, value, strings.ToLower(category.Descriptor), value, category.Label, strings.ToLower(category.Color),
	)
}

// OpenAIImageGenerator calls any OpenAI-compatible images endpoint.
type OpenAIImageGenerator struct {
	api   *openai.Client
	model string
	size  string
	l     *logger.Logger
}

func NewOpenAIImageGenerator(apiKey, baseURL, model, size string, l *logger.Logger, httpClient HTTPClient) (*OpenAIImageGenerator, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, errors.New("image API key cannot be empty")
	}

	cfg := openai.DefaultConfig(key)
	if base := strings.TrimSpace(baseURL); base != "" {
		cfg.BaseURL = strings.TrimRight(base, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	if strings.TrimSpace(model) == "" {
		model = DefaultImageModel
	}

	return &OpenAIImageGenerator{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		size:  size,
		l:     l,
	}, nil
}

func (g *OpenAIImageGenerator) Name() string {
	return g.model
}

func (g *OpenAIImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.l.Info("making image generation request", map[string]any{
		"model":  g.model,
		"prompt": prompt,
	})

	resp, err := g.api.CreateImage(ctx, openai.ImageRequest{
		Prompt: prompt,
		Model:  g.model,
		N:      1,
		Size:   g.size,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageAPIFailure, err)
	}

	if len(resp.Data) == 0 {
		return "", fmt.Errorf("%w: response contains no images", ErrImageAPIFailure)
	}

	g.l.Info("received generated image", map[string]any{
		"model":   g.model,
		"created": resp.Created,
		"images":  len(resp.Data),
	})

	return resp.Data[0].URL, nil
}

// StaticImageGenerator answers every prompt with the same picture.
type StaticImageGenerator struct {
	url string
}

func NewStaticImageGenerator(url string) (*StaticImageGenerator, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("placeholder image URL cannot be empty")
	}
	return &StaticImageGenerator{url: url}, nil
}

func (g *StaticImageGenerator) Name() string {
	return ImageKindStatic
}

func (g *StaticImageGenerator) Generate(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageAPIFailure, err)
	}
	return g.url, nil
}
