package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Log is the process-wide logger, set by Init.
var Log *zap.SugaredLogger

type Config struct {
	Port          string
	Env           string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
}

// Init loads .env (optional), builds the Config and wires the logger.
func Init() (*Config, error) {
	// .env is a convenience for local runs only
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		GeminiTimeout: 30 * time.Second,
	}

	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid GEMINI_TIMEOUT_SECONDS %q", v)
		}
		cfg.GeminiTimeout = time.Duration(secs) * time.Second
	}

	if cfg.Env != "development" && cfg.Env != "staging" && cfg.Env != "production" {
		return nil, fmt.Errorf("APP_ENV must be development, staging or production, got %q", cfg.Env)
	}

	if err := initLogger(cfg.Env); err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" {
		Log.Warn("GEMINI_API_KEY not set, nutrition analysis will use fallback data")
	}

	return cfg, nil
}

func initLogger(env string) error {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	Log = logger.Sugar()
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
