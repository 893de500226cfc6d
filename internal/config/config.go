package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config se arma desde variables de entorno (y un .env opcional).
type Config struct {
	Port           string        `mapstructure:"PORT"`
	Env            string        `mapstructure:"ENV"`
	AppName        string        `mapstructure:"APP_NAME"`
	DatabaseDSN    string        `mapstructure:"DB_DSN"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	LogFormat      string        `mapstructure:"LOG_FORMAT"`
	ReadTimeout    time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `mapstructure:"WRITE_TIMEOUT"`
	MetricsEnabled bool          `mapstructure:"METRICS_ENABLED"`
}

var keys = []string{
	"PORT",
	"ENV",
	"APP_NAME",
	"DB_DSN",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"READ_TIMEOUT",
	"WRITE_TIMEOUT",
	"METRICS_ENABLED",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "dvt-back")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")
	v.SetDefault("METRICS_ENABLED", true)

	// Unmarshal solo ve las env vars ligadas explícitamente
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// el .env es opcional, pero si existe tiene que parsear
	if err := v.ReadInConfig(); err != nil && !missingConfigFile(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.DatabaseDSN = strings.TrimSpace(cfg.DatabaseDSN)
	if strings.TrimSpace(cfg.LogFormat) == "" {
		cfg.LogFormat = cfg.defaultLogFormat()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Con SetConfigFile viper no devuelve ConfigFileNotFoundError sino el error de fs.
func missingConfigFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// En desarrollo se loguea en consola legible; en el resto, JSON.
func (c *Config) defaultLogFormat() string {
	if c.IsDev() {
		return "text"
	}
	return "json"
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("READ_TIMEOUT and WRITE_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UsesPostgres es false cuando no hay DSN: el router cae a repos in-memory.
func (c *Config) UsesPostgres() bool {
	return c.DatabaseDSN != ""
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
