package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config/config.yaml"

type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Sentry    SentryConfig    `yaml:"sentry"`
	Predictor PredictorConfig `yaml:"predictor"`
	Image     ImageConfig     `yaml:"image"`
}

type AppConfig struct {
	Name    string `yaml:"name" split_words:"true"`
	Version string `yaml:"version" split_words:"true"`
	Env     string `yaml:"env" split_words:"true"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" split_words:"true"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true"`
	BodyLimit    int    `yaml:"body_limit" split_words:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level" split_words:"true"`
	Format string `yaml:"format" split_words:"true"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn,omitempty" split_words:"true"`
	Debug bool   `yaml:"debug" split_words:"true"`
}

// PredictorConfig points at the trained forecaster. Timeout is in seconds and
// bounds each call to a remote model server.
type PredictorConfig struct {
	Path    string `yaml:"path" split_words:"true"`
	Timeout int    `yaml:"timeout" split_words:"true"`
}

// ImageConfig selects the image generator. Kind "openai" talks to any
// OpenAI-compatible images endpoint; "static" always returns PlaceholderURL.
type ImageConfig struct {
	Kind           string `yaml:"kind" split_words:"true"`
	BaseURL        string `yaml:"base_url" split_words:"true"`
	APIKey         string `yaml:"api_key,omitempty" split_words:"true"`
	Model          string `yaml:"model" split_words:"true"`
	Size           string `yaml:"size,omitempty" split_words:"true"`
	Timeout        int    `yaml:"timeout" split_words:"true"`
	PlaceholderURL string `yaml:"placeholder_url" split_words:"true"`
}

// ConfigProvider loads and validates configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a YAML file and overrides it with environment
// variables. A missing file is not an error.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "aqi-forecast",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 60,
			IdleTimeout:  120,
			BodyLimit:    4 * 1024 * 1024,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Predictor: PredictorConfig{
			Path:    "models/aqi",
			Timeout: 30,
		},
		Image: ImageConfig{
			Kind:           "static",
			Model:          "cogview-3-plus",
			Timeout:        60,
			PlaceholderURL: "https://via.placeholder.com/400x200?text=Prediction+Image",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	var problems []string

	if strings.TrimSpace(cnf.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(cnf.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if cnf.Server.ReadTimeout <= 0 || cnf.Server.WriteTimeout <= 0 || cnf.Server.IdleTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}

	switch cnf.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not supported", cnf.Log.Level))
	}
	switch cnf.Log.Format {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not supported", cnf.Log.Format))
	}

	if strings.TrimSpace(cnf.Predictor.Path) == "" {
		problems = append(problems, "predictor.path is required")
	}
	if cnf.Predictor.Timeout <= 0 {
		problems = append(problems, "predictor.timeout must be positive")
	}

	switch cnf.Image.Kind {
	case "openai":
		if strings.TrimSpace(cnf.Image.APIKey) == "" {
			problems = append(problems, "image.api_key is required for the openai image generator")
		}
		if cnf.Image.Timeout <= 0 {
			problems = append(problems, "image.timeout must be positive")
		}
	case "static":
		if strings.TrimSpace(cnf.Image.PlaceholderURL) == "" {
			problems = append(problems, "image.placeholder_url is required for the static image generator")
		}
	default:
		problems = append(problems, fmt.Sprintf("image.kind %q is not supported", cnf.Image.Kind))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}

// NewConfig loads config/config.yaml overridden by the environment. The file
// location can be changed with CONFIG_PATH.
func NewConfig() (*Config, error) {
	path := DefaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		path = p
	}
	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

func (c *Config) PredictorTimeout() time.Duration {
	return time.Duration(c.Predictor.Timeout) * time.Second
}

func (c *Config) ImageTimeout() time.Duration {
	return time.Duration(c.Image.Timeout) * time.Second
}

func (s ServerConfig) Timeouts() (read, write, idle time.Duration) {
	return time.Duration(s.ReadTimeout) * time.Second,
		time.Duration(s.WriteTimeout) * time.Second,
		time.Duration(s.IdleTimeout) * time.Second
}
