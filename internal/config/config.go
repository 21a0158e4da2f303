package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port      int
	LogLevel  string
	StaticDir string

	// Pipeline
	LenientNoiseFilter bool // skip the fail-if-absent balance-payment check
	DecimalComma       bool // render amounts with a decimal comma
}

// Load reads configuration from environment variables, honoring a local
// .env file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnvInt("PORT", 8080),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		StaticDir: getEnv("STATIC_DIR", ""),

		LenientNoiseFilter: getEnvBool("LENIENT_NOISE_FILTER", false),
		DecimalComma:       getEnvBool("DECIMAL_COMMA", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
