package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	// HTTPAddr enables the JSON API when set; otherwise the console menu runs.
	HTTPAddr    string
	Environment string
	CORSOrigins []string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Ignoring .env file: %v", err)
	}

	return &Config{
		HTTPAddr:    getEnv("BANK_HTTP_ADDR", ""),
		Environment: getEnv("BANK_ENV", EnvDevelopment),
		CORSOrigins: splitList(getEnv("BANK_CORS_ORIGINS", "")),
	}
}

// ServeHTTP reports whether the API mode is selected
func (c *Config) ServeHTTP() bool { return c.HTTPAddr != "" }

func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
