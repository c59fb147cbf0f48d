package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	LogDir           string        // logs directory
	LogLevel         string        // zap level name: debug, info, warn, error
	Interval         time.Duration // wait between check rounds
	HTTPTimeout      time.Duration // per-probe client timeout
	LatencyThreshold time.Duration // probes at or above this are DOWN
	Concurrency      int           // probes in flight per round; 1 = sequential
	StatusAddr       string        // status API bind address, empty disables it
}

func FromEnv() Config {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	logLevel := "info"
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if _, err := zapcore.ParseLevel(v); err == nil {
			logLevel = v
		}
	}

	concurrency := 1
	if v := os.Getenv("MAX_CONCURRENT_CHECKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	return Config{
		LogDir:           logDir,
		LogLevel:         logLevel,
		Interval:         durationMS("CHECK_INTERVAL_MS", 15*time.Second),
		HTTPTimeout:      durationMS("HTTP_TIMEOUT_MS", 5*time.Second),
		LatencyThreshold: durationMS("LATENCY_THRESHOLD_MS", 500*time.Millisecond),
		Concurrency:      concurrency,
		StatusAddr:       os.Getenv("STATUS_ADDR"),
	}
}

// durationMS reads a positive millisecond count from key, falling back to def.
func durationMS(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
