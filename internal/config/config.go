package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultSSLMode     = "require"
	defaultBcryptCost  = 10
	defaultConcurrency = 10
)

type ServerConfig struct {
	Env  string
	Port string
}

type DataBaseConfig struct {
	URL     string
	SSLMode string
}

type SeedConfig struct {
	BcryptCost  int
	Concurrency int
}

type Config struct {
	Server   ServerConfig
	Database DataBaseConfig
	Seed     SeedConfig
	IsDev    bool
}

func validateEnv() error {
	environmentVariables := []string{
		// database
		"POSTGRES_URL",
	}
	for _, env := range environmentVariables {
		if os.Getenv(env) == "" {
			return fmt.Errorf("environment variable %s is not set", env)
		}
	}

	return nil
}

// New loads the configuration and exits the process when it is incomplete.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

func Load() (*Config, error) {
	if err := validateEnv(); err != nil {
		return nil, err
	}

	cost, err := intEnv("BCRYPT_COST", defaultBcryptCost)
	if err != nil {
		return nil, err
	}
	if cost < 4 || cost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cost)
	}

	concurrency, err := intEnv("SEED_CONCURRENCY", defaultConcurrency)
	if err != nil {
		return nil, err
	}

	env := os.Getenv("ENV")

	return &Config{
		Server: ServerConfig{
			Env:  env,
			Port: stringEnv("PORT", defaultPort),
		},
		Database: DataBaseConfig{
			URL:     os.Getenv("POSTGRES_URL"),
			SSLMode: stringEnv("DB_SSLMODE", defaultSSLMode),
		},
		Seed: SeedConfig{
			BcryptCost:  cost,
			Concurrency: concurrency,
		},
		IsDev: env == "development",
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
