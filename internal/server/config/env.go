package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays variables that are set; unset ones keep earlier values.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
