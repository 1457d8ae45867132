package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the data service and the terminal client.
type Config struct {
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	Port    string `envconfig:"PORT" default:"5000"`
	DataDir string `envconfig:"DATA_DIR" default:"data"`
	Logging LoggingConfig
	Metrics MetricsConfig
	Client  ClientConfig
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// ClientConfig controls how the terminal client reaches the data service.
type ClientConfig struct {
	BaseURL     string        `envconfig:"PROPHET_BASE_URL" default:"http://127.0.0.1:5000"`
	Timeout     time.Duration `envconfig:"PROPHET_TIMEOUT" default:"10s"`
	NotifyDelay time.Duration `envconfig:"PROPHET_NOTIFY_DELAY" default:"5s"`
}

// Addr is the listen address of the data service.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// MustLoad is Load that falls back to defaults on a parse error.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	cfg := Config{
		Host:    defaultHost,
		Port:    defaultPort,
		DataDir: defaultDataDir,
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
		Client: ClientConfig{
			BaseURL:     defaultClientBaseURL,
			Timeout:     defaultClientTimeout,
			NotifyDelay: defaultNotifyDelay,
		},
	}
	return cfg
}

func (c *Config) normalize() {
	if c.Client.Timeout <= 0 {
		c.Client.Timeout = defaultClientTimeout
	}
	if c.Client.NotifyDelay <= 0 {
		c.Client.NotifyDelay = defaultNotifyDelay
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = defaultServiceName
	}
}
