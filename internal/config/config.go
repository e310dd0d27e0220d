package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDSN       string
	LogFile     string
	Env         string
	FrontendURL string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getenv("PORT", "5000"),
		DBDSN:       getenv("DB_DSN", "zosswater.db"),
		LogFile:     getenv("LOG_FILE", "./zosswater.log"),
		Env:         getenv("APP_ENV", "development"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s APP_ENV=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.Env, cfg.LogFile)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
