package repositories

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqi-forecast/internal/aqi"
	"aqi-forecast/pkg/logger"
)

func TestImagePrompt(t *testing.T) {
	prompt := ImagePrompt("Paris", 87, aqi.Moderate)

	assert.Contains(t, prompt, "downtown Paris")
	assert.Contains(t, prompt, "air quality index of 87")
	assert.Contains(t, prompt, "healthy for people")
	assert.Contains(t, prompt, `"AQI: 87 Moderate"`)
	assert.Contains(t, prompt, "on a yellow background")
}

func TestOpenAIImageGenerator_Generate(t *testing.T) {
	var received map[string]any

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"created": 1760000000, "data": [{"url": "https://images.example.com/1.png"}, {"url": "https://images.example.com/2.png"}]}`))
	}))
	defer mockServer.Close()

	g, err := NewOpenAIImageGenerator("test-key", mockServer.URL+"/", "", "", logger.NewZapLogger("test-app"), mockServer.Client())
	require.NoError(t, err)
	assert.Equal(t, DefaultImageModel, g.Name())

	url, err := g.Generate(context.Background(), "a city")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/1.png", url)

	require.NotNil(t, received)
	assert.Equal(t, "a city", received["prompt"])
	assert.Equal(t, DefaultImageModel, received["model"])
}

func TestOpenAIImageGenerator_EmptyData(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"created": 1760000000, "data": []}`))
	}))
	defer mockServer.Close()

	g, err := NewOpenAIImageGenerator("test-key", mockServer.URL, "dall-e-3", "1024x1024", logger.NewZapLogger("test-app"), mockServer.Client())
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "a city")
	assert.ErrorIs(t, err, ErrImageAPIFailure)
}

func TestOpenAIImageGenerator_APIError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	}))
	defer mockServer.Close()

	g, err := NewOpenAIImageGenerator("bad-key", mockServer.URL, "", "", logger.NewZapLogger("test-app"), mockServer.Client())
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "a city")
	assert.ErrorIs(t, err, ErrImageAPIFailure)
}

func TestNewOpenAIImageGenerator_EmptyKey(t *testing.T) {
	_, err := NewOpenAIImageGenerator(" ", "", "", "", logger.NewZapLogger("test-app"), nil)
	assert.Error(t, err)
}

func TestStaticImageGenerator(t *testing.T) {
	_, err := NewStaticImageGenerator("")
	assert.Error(t, err)

	g, err := NewStaticImageGenerator("https://via.placeholder.com/400x200?text=Prediction+Image")
	require.NoError(t, err)

	url, err := g.Generate(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "https://via.placeholder.com/400x200?text=Prediction+Image", url)
}
