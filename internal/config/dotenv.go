package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	DBPath       string
	SeedFixtures bool
}

func Default() Config {
	return Config{
		DBPath:       "scores.db",
		SeedFixtures: true,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("DB_PATH"); raw != "" {
		cfg.DBPath = raw
	}
	if raw := os.Getenv("SEED_FIXTURES"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.SeedFixtures = value
		}
	}
	return cfg
}
