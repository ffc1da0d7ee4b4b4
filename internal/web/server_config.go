package web

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "COVERGEN_LISTEN"
	EnvDevMode    = "COVERGEN_DEV"
)

// DefaultListenAddr is used when neither flag nor environment sets one.
const DefaultListenAddr = ":8080"

// ServerConfig contains settings for running the preview server.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode}, nil
}
