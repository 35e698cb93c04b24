package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataDir  string `validate:"required"`
	LogLevel string `validate:"oneof=debug info warn error"`

	RawPageSize       int `validate:"gt=0"`
	PromptMaxAttempts int `validate:"gte=0"`

	Catalog Catalog
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DataDir:  getEnv("DATA_DIR", "."),
		LogLevel: getEnv("LOG_LEVEL", "warn"),

		RawPageSize:       getEnvInt("RAW_PAGE_SIZE", 5),
		PromptMaxAttempts: getEnvInt("PROMPT_MAX_ATTEMPTS", 0),

		Catalog: DefaultCatalog(),
	}
}

// Validate checks the loaded values against their constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Catalog.Cities) == 0 {
		return fmt.Errorf("config: catalog has no cities")
	}
	return nil
}

// CityPath returns the data file for city, or false if the city is unknown.
func (c *Config) CityPath(city string) (string, bool) {
	file, ok := c.Catalog.File(city)
	if !ok {
		return "", false
	}
	return filepath.Join(c.DataDir, file), true
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
