// Package config loads server and CLI settings from the environment, with
// optional .env file support for development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultHTTPPort  = 4483
	DefaultRedisHost = "localhost"
	DefaultRedisPort = 6379
)

// Config holds process-level settings. Database settings live in
// pkg/database and are loaded separately.
type Config struct {
	// HTTPPort is the fan-out server listen port.
	HTTPPort int

	// DefaultProject is the project key assumed by endpoints and CLI
	// commands that take no explicit project.
	DefaultProject string

	// Redis backs the job queue.
	RedisHost string
	RedisPort int

	// StateDir holds per-session swarm state (review tracker snapshots).
	StateDir string
}

// RedisAddr returns host:port for the queue backend.
func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in when present; real environment variables
// win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:       DefaultHTTPPort,
		DefaultProject: getEnv("HIVE_PROJECT", "default"),
		RedisHost:      getEnv("REDIS_HOST", DefaultRedisHost),
		RedisPort:      DefaultRedisPort,
		StateDir:       getEnv("SWARM_STATE_DIR", defaultStateDir()),
	}

	var err error
	if cfg.HTTPPort, err = getEnvInt("HTTP_PORT", DefaultHTTPPort); err != nil {
		return Config{}, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", DefaultRedisPort); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hive-state"
	}
	return home + "/.hive/state"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
