package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophposts/internal/flagx"
	"github.com/dmitrijs2005/gophposts/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent keys leave the
// corresponding Config field untouched.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config (or CONFIG).
// A missing or invalid file panics: the process cannot start half-configured.
func parseJson(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
