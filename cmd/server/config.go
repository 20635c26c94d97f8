package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the server
type Config struct {
	Port           string
	FrontendURL    string
	RateLimitRPS   float64
	RateLimitBurst int
	SessionTTL     time.Duration
}

// LoadConfig reads defaults from the environment (and a .env file if present)
// and lets command line flags override them
func LoadConfig(args []string) (Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg := Config{}
	fs.StringVar(&cfg.Port, "port", getEnv("PORT", "8080"), "Server port")
	fs.StringVar(&cfg.FrontendURL, "frontend", getEnv("FRONTEND_URL", "http://localhost:5173"), "Frontend URL for CORS")
	fs.Float64Var(&cfg.RateLimitRPS, "rate", getEnvFloat("RATE_LIMIT_RPS", 10), "Requests per second allowed per client")
	fs.IntVar(&cfg.RateLimitBurst, "burst", getEnvInt("RATE_LIMIT_BURST", 20), "Request burst allowed per client")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", getEnvDuration("SESSION_TTL", 2*time.Hour), "Idle time before a session is dropped")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("session-ttl must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive, got %v/s burst %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
