package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN          string
	ServerPort     string
	SessionSecret  string
	GeminiAPIKey   string
	FrontendOrigin string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),
	}

	if cfg.DBDSN == "" {
		// archivio sqlite locale, l'analogo del localStorage dell'ERP originale
		cfg.DBDSN = "edil_erp.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.FrontendOrigin == "" {
		cfg.FrontendOrigin = "http://localhost:5173"
	}
	// GEMINI_API_KEY può mancare: l'assistente risponde con il messaggio di cortesia

	return cfg
}
