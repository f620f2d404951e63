package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultStationsURL = "https://data.ibb.gov.tr/dataset/79b0e26e-e923-498b-a675-453382274178/resource/726e9d82-37f7-4142-8fa0-4f70a5530188/download/sarj_istasyonlari.geojson"
	defaultGeocoderURL = "https://nominatim.openstreetmap.org"
	defaultUserAgent   = "istanbul-ev-stationfinder/1.0"
)

type Config struct {
	Environment       string
	LogLevel          zerolog.Level
	HTTPTimeout       time.Duration
	StationsURL       string
	GeocoderURL       string
	GeocoderUserAgent string
	Port              string
	AllowedOrigins    []string
	SentryDSN         string
	City              City
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithHTTPTimeout allows setting the HTTP timeout
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

// WithStationsURL points the repository at a different dataset
func WithStationsURL(url string) Option {
	return func(c *Config) {
		c.StationsURL = url
	}
}

func WithGeocoder(baseURL, userAgent string) Option {
	return func(c *Config) {
		c.GeocoderURL = strings.TrimRight(baseURL, "/")
		c.GeocoderUserAgent = userAgent
	}
}

func WithPort(port string) Option {
	return func(c *Config) {
		c.Port = port
	}
}

// WithAllowedOrigins takes a comma separated list of CORS origins
func WithAllowedOrigins(origins string) Option {
	return func(c *Config) {
		c.AllowedOrigins = splitList(origins)
	}
}

func WithSentryDSN(dsn string) Option {
	return func(c *Config) {
		c.SentryDSN = dsn
	}
}

func WithCity(city City) Option {
	return func(c *Config) {
		c.City = city
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment:       "production",
		LogLevel:          zerolog.InfoLevel,
		HTTPTimeout:       10 * time.Second,
		StationsURL:       defaultStationsURL,
		GeocoderURL:       defaultGeocoderURL,
		GeocoderUserAgent: defaultUserAgent,
		Port:              "8080",
		AllowedOrigins:    []string{"*"},
		City:              Istanbul(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		log.Logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	// log.Ctx falls back to the global logger outside a request
	zerolog.DefaultContextLogger = &log.Logger
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithHTTPTimeout(getDurationEnvOrDefault("HTTP_TIMEOUT", 10*time.Second)),
		WithStationsURL(getEnvOrDefault("STATIONS_URL", defaultStationsURL)),
		WithGeocoder(
			getEnvOrDefault("GEOCODER_URL", defaultGeocoderURL),
			getEnvOrDefault("GEOCODER_USER_AGENT", defaultUserAgent),
		),
		WithPort(getEnvOrDefault("PORT", "8080")),
		WithAllowedOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
		WithSentryDSN(os.Getenv("SENTRY_DSN")),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid duration in environment variable, using default")
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
