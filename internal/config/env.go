package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that provide CLI flag defaults.
const (
	EnvFPS      = "JUMPER_FPS"
	EnvSeed     = "JUMPER_SEED"
	EnvDB       = "JUMPER_DB"
	EnvConfig   = "JUMPER_CONFIG"
	EnvFrontend = "JUMPER_FRONTEND"
)

// LoadDotEnv loads variables from the given .env files (default ".env").
// Missing files are not an error; variables already set in the
// environment win over file values.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", p, err)
		}
	}
	return nil
}

// EnvString returns the variable value or def when unset or empty.
func EnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvInt returns the variable parsed as int, or def when unset or malformed.
func EnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvInt64 returns the variable parsed as int64, or def when unset or malformed.
func EnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
