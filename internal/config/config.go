// Package config reads server configuration from the environment. main
// loads an optional .env file first, so local overrides live next to the
// binary rather than in shell profiles.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs at startup.
type Config struct {
	Addr          string        // HTTP listen address
	CatalogPath   string        // path to the catalog SQLite file
	StartingGold  int           // player gold at session start
	SimInterval   time.Duration // simulator tick interval
	SimIncrement  float64       // multiplicative bid increment per simulated bid
	SweepInterval time.Duration // auction closing sweep interval
}

// Load reads the configuration, filling in defaults for unset variables.
func Load() Config {
	return Config{
		Addr:          getenv("TRADEPOST_ADDR", ":8080"),
		CatalogPath:   getenv("TRADEPOST_CATALOG", "tradepost.sqlite3"),
		StartingGold:  getint("TRADEPOST_STARTING_GOLD", 5000),
		SimInterval:   getduration("TRADEPOST_SIM_INTERVAL", 10*time.Second),
		SimIncrement:  getfloat("TRADEPOST_SIM_INCREMENT", 1.10),
		SweepInterval: getduration("TRADEPOST_SWEEP_INTERVAL", 15*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
