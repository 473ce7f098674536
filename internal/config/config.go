package config

import (
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	// HTTPListenAddr is where the public echo API listens.
	HTTPListenAddr string `validate:"required,hostname_port"`
	// AdminListenAddr serves /metrics, /healthz and /swagger/. Empty disables it.
	AdminListenAddr string        `validate:"omitempty,hostname_port,nefield=HTTPListenAddr"`
	LogLevel        string        `validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	LogFormat       string        `validate:"required,oneof=json console"`
	ServiceName     string        `validate:"required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// Load reads the configuration from the environment. Variables from the
// dotenv file named by ENV_FILE (default ".env") are loaded first without
// overriding variables that are already set; a missing file is ignored.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "load env file %s", envFile)
	}

	shutdownTimeout, err := getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPListenAddr:  getEnv("HTTP_LISTEN_ADDR", ":8000"),
		AdminListenAddr: getEnv("ADMIN_LISTEN_ADDR", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ServiceName:     getEnv("SERVICE_NAME", "webhook-client"),
		ShutdownTimeout: shutdownTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field formats and allowed values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return d, nil
}
