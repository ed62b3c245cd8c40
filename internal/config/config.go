// Package config materializes the runtime configuration from the
// environment. main loads a .env file before this package runs, so every
// value here comes from plain environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"ytup/internal/faults"
)

// Environment variable names.
const (
	EnvClientSecretPath = "CLIENT_SECRET_PATH"
	EnvTokenPath        = "YTUP_TOKEN_PATH"
	EnvLogPath          = "YTUP_LOG_PATH"
	EnvIDRecordPath     = "YTUP_IDS_PATH"
	EnvCallbackPort     = "OAUTH_CALLBACK_PORT"
)

// Defaults for everything but the client secret, which has none.
const (
	DefaultTokenPath    = "tokens/token.json"
	DefaultLogPath      = "ytup_debug.log"
	DefaultIDRecordPath = "video_ids.txt"
	DefaultCallbackPort = 8080
)

// Config holds the resolved runtime configuration.
type Config struct {
	ClientSecretPath string
	TokenPath        string
	LogPath          string
	IDRecordPath     string
	CallbackPort     int
}

// LogPath resolves the diagnostic log path without requiring a full Config,
// so logging can start before configuration validation.
func LogPath() string {
	if p := os.Getenv(EnvLogPath); p != "" {
		return p
	}
	return DefaultLogPath
}

// FromEnv builds a Config from the environment. A missing client secret
// path is fatal: no API client may be constructed without it.
func FromEnv() (*Config, error) {
	secret := os.Getenv(EnvClientSecretPath)
	if secret == "" {
		return nil, faults.New(faults.ConfigMissing, "",
			fmt.Errorf("%s is not set", EnvClientSecretPath))
	}

	cfg := &Config{
		ClientSecretPath: secret,
		TokenPath:        DefaultTokenPath,
		LogPath:          LogPath(),
		IDRecordPath:     DefaultIDRecordPath,
		CallbackPort:     DefaultCallbackPort,
	}
	if p := os.Getenv(EnvTokenPath); p != "" {
		cfg.TokenPath = p
	}
	if p := os.Getenv(EnvIDRecordPath); p != "" {
		cfg.IDRecordPath = p
	}
	if p := os.Getenv(EnvCallbackPort); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return nil, faults.New(faults.ConfigMissing, "",
				fmt.Errorf("invalid %s: %q", EnvCallbackPort, p))
		}
		cfg.CallbackPort = port
	}
	return cfg, nil
}
