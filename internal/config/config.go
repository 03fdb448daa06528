package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultDataPath = "dripstore.db"

type Config struct {
	DataPath       string
	AppEnv         string
	SessionSecret  string
	WhatsAppNumber string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DataPath:       os.Getenv("DATA_PATH"),
		AppEnv:         os.Getenv("APP_ENV"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),
	}

	if cfg.DataPath == "" {
		cfg.DataPath = defaultDataPath
	}

	return cfg
}
