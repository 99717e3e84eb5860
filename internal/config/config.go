package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env              string
	Port             string
	CORSAllowOrigins []string

	// Jobs
	PeriodCron string

	// Projection
	ProjectionDefaultMonths int
}

// Load loads configuration from environment variables, reading .env first
// when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		PeriodCron:       getEnv("PERIOD_CRON", "5 0 * * *"),
	}

	monthsStr := getEnv("PROJECTION_DEFAULT_MONTHS", "12")
	months, err := strconv.Atoi(monthsStr)
	if err != nil || months < 1 {
		log.Printf("Warning: invalid PROJECTION_DEFAULT_MONTHS value '%s', falling back to 12\n", monthsStr)
		months = 12
	}
	cfg.ProjectionDefaultMonths = months

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
