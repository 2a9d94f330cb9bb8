package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// DiscountPercent is applied to the demo checkout quote.
	DiscountPercent float64
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and then builds a Config from it. Missing files are
// not an error; variables already set in the environment win.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}

	return Config{
		AppEnv:          getEnv("APP_ENV", "dev"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DiscountPercent: getEnvFloat("DEMO_DISCOUNT_PERCENT", 0),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}

	return n
}
