package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type config struct {
	users       int
	tickets     int
	shows       int
	concurrency int

	admissionTimeout time.Duration
	processingDelay  time.Duration
	dispatchRPS      float64
	seed             uint64

	logLevel  string
	logFormat string

	statsEnabled       bool
	statsRedisAddr     string
	statsRedisPassword string
	statsRedisDB       int
	statsPrefix        string
	statsTTL           time.Duration

	metricsAddr string
}

// readConfig lê as variáveis de ambiente e, se houver, os argumentos
// posicionais <num_users> <num_tickets> <num_shows>, que têm precedência.
func readConfig(args []string) (config, error) {
	cfg := config{}
	cfg.users = getenvIntDefault("BOOKING_USERS", 0)
	cfg.tickets = getenvIntDefault("BOOKING_TICKETS", 0)
	cfg.shows = getenvIntDefault("BOOKING_SHOWS", 0)
	cfg.concurrency = getenvIntDefault("BOOKING_CONCURRENCY", 3)
	cfg.admissionTimeout = getenvDurationDefault("BOOKING_ADMISSION_TIMEOUT", 0)
	cfg.processingDelay = getenvDurationDefault("BOOKING_PROCESSING_DELAY", 100*time.Millisecond)
	cfg.dispatchRPS = getenvFloatDefault("BOOKING_DISPATCH_RPS", 20)
	cfg.seed = uint64(getenvIntDefault("BOOKING_SEED", 0))

	cfg.logLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.logFormat = getenvDefault("LOG_FORMAT", "console")

	cfg.statsEnabled = getenvBoolDefault("BOOKING_STATS_ENABLED", false)
	cfg.statsRedisAddr = getenvDefault("BOOKING_STATS_REDIS_ADDR", "")
	cfg.statsRedisPassword = os.Getenv("BOOKING_STATS_REDIS_PASSWORD")
	cfg.statsRedisDB = getenvIntDefault("BOOKING_STATS_REDIS_DB", 0)
	cfg.statsPrefix = getenvDefault("BOOKING_STATS_PREFIX", "booking:stats")
	cfg.statsTTL = getenvDurationDefault("BOOKING_STATS_TTL", 24*time.Hour)

	cfg.metricsAddr = os.Getenv("METRICS_ADDR")

	switch len(args) {
	case 0:
	case 3:
		targets := []*int{&cfg.users, &cfg.tickets, &cfg.shows}
		for i, a := range args {
			n, err := strconv.Atoi(strings.TrimSpace(a))
			if err != nil {
				return config{}, fmt.Errorf("argument %d (%q) is not an integer", i+1, a)
			}
			*targets[i] = n
		}
	default:
		return config{}, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}

	if cfg.users <= 0 || cfg.tickets <= 0 || cfg.shows <= 0 {
		return config{}, fmt.Errorf("all arguments must be positive integers: users=%d tickets=%d shows=%d",
			cfg.users, cfg.tickets, cfg.shows)
	}
	if cfg.concurrency <= 0 {
		return config{}, errors.New("BOOKING_CONCURRENCY must be > 0")
	}
	if cfg.dispatchRPS < 0 {
		return config{}, errors.New("BOOKING_DISPATCH_RPS must be >= 0")
	}
	if cfg.statsEnabled && strings.TrimSpace(cfg.statsRedisAddr) == "" {
		return config{}, errors.New("BOOKING_STATS_REDIS_ADDR is required when BOOKING_STATS_ENABLED=true")
	}
	return cfg, nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvFloatDefault(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBoolDefault(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
