package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName         = "WalletPro"
	defaultAppEnv          = "development"
	defaultPort            = "3000"
	defaultLogLevel        = "info"
	defaultStaticDir       = "public"
	defaultCORSOrigins     = "*"
	defaultShutdownDelay   = 10 * time.Second
	defaultTransactPerMin  = 0
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
	transactRateEnvVar     = "TRANSACT_RATE_LIMIT_PER_MIN"
	negativeOpeningEnvVar  = "ALLOW_NEGATIVE_OPENING_BALANCE"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName              string
	Env                  string
	Port                 string
	LogLevel             string
	RedisURL             string
	StaticDir            string
	CORSAllowOrigins     string
	ShutdownPeriod       time.Duration
	TransactRatePerMin   int
	AllowNegativeOpening bool
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:            getEnv("APP_NAME", defaultAppName),
		Env:                strings.ToLower(getEnv("APP_ENV", defaultAppEnv)),
		Port:               getEnv("PORT", defaultPort),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		RedisURL:           os.Getenv("REDIS_URL"),
		StaticDir:          getEnv("STATIC_DIR", defaultStaticDir),
		CORSAllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", defaultCORSOrigins),
		ShutdownPeriod:     defaultShutdownDelay,
		TransactRatePerMin: defaultTransactPerMin,
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(transactRateEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid %s: %q", transactRateEnvVar, v)
		}
		cfg.TransactRatePerMin = n
	}

	if v := os.Getenv(negativeOpeningEnvVar); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", negativeOpeningEnvVar, err)
		}
		cfg.AllowNegativeOpening = allow
	}

	if cfg.ShutdownPeriod <= 0 {
		return Config{}, fmt.Errorf("shutdown timeout must be positive")
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
