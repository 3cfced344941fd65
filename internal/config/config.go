package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes application configuration to the rest of the codebase.
// Handlers and services depend on this interface rather than the concrete
// struct so tests can substitute their own values.
type Provider interface {
	GetAPIBaseURL() string
	GetListenAddr() string
	GetSessionSecret() string
	GetPlaidEnv() string
	GetRequestTimeout() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	// APIBaseURL is the root of the remote backend REST API. All data this
	// application renders comes from that backend; nothing is stored locally.
	APIBaseURL     string
	ListenAddr     string
	SessionSecret  string
	PlaidEnv       string
	RequestTimeout time.Duration
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIBaseURL:     os.Getenv("API_BASE_URL"),
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		PlaidEnv:       os.Getenv("PLAID_ENV"),
		RequestTimeout: 15 * time.Second,
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.PlaidEnv == "" {
		cfg.PlaidEnv = "sandbox"
	}
	if raw := os.Getenv("REQUEST_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}

	if cfg.APIBaseURL == "" || cfg.SessionSecret == "" {
		log.Fatal("Required environment variables API_BASE_URL or SESSION_SECRET are not set.")
	}

	return cfg
}

func (c *Config) GetAPIBaseURL() string            { return c.APIBaseURL }
func (c *Config) GetListenAddr() string            { return c.ListenAddr }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetPlaidEnv() string              { return c.PlaidEnv }
func (c *Config) GetRequestTimeout() time.Duration { return c.RequestTimeout }
