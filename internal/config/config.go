package config

import (
	"os"
	"strconv"
)

type Config struct {
	Storage StorageConfig
	Logs    LogConfig
	QR      QRConfig
	Seed    SeedConfig
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Dir string
}

type QRConfig struct {
	Secret string
}

type SeedConfig struct {
	// Seed stock catalog and default discounts on first run.
	Enabled bool
}

func Load() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir: getEnv("TICKETING_DATA_DIR", "data"),
		},
		Logs: LogConfig{
			Dir: getEnv("TICKETING_LOG_DIR", "logs"),
		},
		QR: QRConfig{
			Secret: getEnv("QR_SECRET_KEY", "dev-secret"),
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("TICKETING_SEED", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
