// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server, the document
// store, and the notification side.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// RedisURL selects the Redis-backed store; empty runs in-memory.
	RedisURL       string
	RedisNamespace string

	// PrefsFile optionally seeds per-user preferences from YAML.
	PrefsFile string

	// ReportTZ is the reporting timezone used for yearly stats. Orders
	// are bucketed into calendar years in this zone, not in UTC.
	ReportTZ string

	PushEndpoint  string
	NotifyWorkers int
	// ReminderTestIntervals swaps real reminder periods for the short
	// prototype stand-ins.
	ReminderTestIntervals bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:              getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout:       durenvs("SHUTDOWN_TIMEOUT", 15),
		RedisURL:              getenv("REDIS_URL", ""),
		RedisNamespace:        getenv("REDIS_NAMESPACE", "junkmail"),
		PrefsFile:             getenv("PREFS_FILE", ""),
		ReportTZ:              getenv("REPORT_TZ", "America/Chicago"),
		PushEndpoint:          getenv("PUSH_ENDPOINT", ""),
		NotifyWorkers:         atoienv("NOTIFY_WORKERS", 2),
		ReminderTestIntervals: boolenv("REMINDER_TEST_INTERVALS", false),
	}
}

// ReportLocation resolves ReportTZ, falling back to UTC on a bad name.
func (c Config) ReportLocation() *time.Location {
	loc, err := time.LoadLocation(c.ReportTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}
