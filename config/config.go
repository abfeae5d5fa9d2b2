package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	PredictorURL      string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	// A missing .env is fine; real env vars win either way.
	godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata"
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		PredictorURL:      os.Getenv("PREDICTOR_URL"),
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}
