package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config captures the tunable parameters for the simulator process. Values
// come from environment variables with defaults that let the binary run with
// no setup at all; the simulation itself takes no configuration.
type Config struct {
	LogLevel  string
	LogFormat string

	// MetricsAddr, when non-empty, serves prometheus metrics on a side
	// listener. Empty disables it; the simulator never requires a socket.
	MetricsAddr string
}

func defaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func Load() (Config, error) {
	cfg := defaultConfig()
	var errs []error

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		v = strings.ToLower(v)
		if v != "text" && v != "json" {
			errs = append(errs, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", v))
		} else {
			cfg.LogFormat = v
		}
	}
	cfg.MetricsAddr = strings.TrimSpace(os.Getenv("METRICS_ADDR"))

	return cfg, errors.Join(errs...)
}
