package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=estoque port=5432 sslmode=disable"

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string
}

func Load(log *zap.Logger) *Config {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "3000"),
		DatabaseDSN: getEnv("DATABASE_DSN", defaultDSN),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if cfg.DatabaseDSN == defaultDSN {
		log.Warn("DATABASE_DSN not set, using local development default")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
