package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the matchmaking parameters plus the simulation
// defaults. Environment variables win over built-in defaults; CLI flags
// (when set) win over both.
type Config struct {
	MaxEloDistance int // widest rating span allowed inside one match

	SimPlayers int     // players to generate
	SimMaxTime float64 // virtual seconds the arrivals are spread over
	SimSeed    int64   // PRNG seed for reproducible runs
	LogLevel   string  // zerolog level name
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
	}

	var err error
	if cfg.MaxEloDistance, err = intEnv("MM_MAX_ELO_DISTANCE", 200); err != nil {
		return nil, err
	}
	if cfg.SimPlayers, err = intEnv("SIM_PLAYERS", 200); err != nil {
		return nil, err
	}
	if cfg.SimMaxTime, err = floatEnv("SIM_MAX_TIME", 240); err != nil {
		return nil, err
	}
	seed, err := intEnv("SIM_SEED", 42)
	if err != nil {
		return nil, err
	}
	cfg.SimSeed = int64(seed)

	if cfg.MaxEloDistance < 0 {
		return nil, fmt.Errorf("MM_MAX_ELO_DISTANCE must be >= 0, got %d", cfg.MaxEloDistance)
	}
	if cfg.SimPlayers < 0 {
		return nil, fmt.Errorf("SIM_PLAYERS must be >= 0, got %d", cfg.SimPlayers)
	}
	if cfg.SimMaxTime <= 0 {
		return nil, fmt.Errorf("SIM_MAX_TIME must be > 0, got %v", cfg.SimMaxTime)
	}

	return cfg, nil
}

func firstNonEmpty(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func floatEnv(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"maxEloDistance=%d simPlayers=%d simMaxTime=%.1f simSeed=%d logLevel=%s",
		c.MaxEloDistance, c.SimPlayers, c.SimMaxTime, c.SimSeed, c.LogLevel,
	)
}
