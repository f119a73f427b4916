package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	DatabasePath      string
	TesseractDataPath string
	CategoryRulePath  string
}

// LoadConfig reads configuration from the environment, after loading an
// optional .env file. Every value has a working default.
func LoadConfig() *Config {
	// A missing .env is fine; env vars may be set directly.
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "9000"),
		DatabasePath:      getEnv("DATABASE_PATH", "data/receipts.db"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		CategoryRulePath:  getEnv("CATEGORY_RULE_PATH", "data/categories.json"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
