package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DBDSN       string
	ContentDir  string
	UploadsDir  string
	LogFile     string
	GeminiKey   string
	GeminiModel string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "sbsoverseas.db"
	} // sqlite file in project root
	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		contentDir = "./data/content"
	}
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./public/uploads"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./sbsoverseas.log" // default log sink in project root
	}
	// Empty key leaves the AI endpoint mounted but unavailable.
	geminiKey := os.Getenv("GEMINI_API_KEY")
	geminiModel := os.Getenv("GEMINI_MODEL")

	cfg := Config{
		Port:        port,
		DBDSN:       dsn,
		ContentDir:  contentDir,
		UploadsDir:  uploadsDir,
		LogFile:     logFile,
		GeminiKey:   geminiKey,
		GeminiModel: geminiModel,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s CONTENT_DIR=%s UPLOADS_DIR=%s LOG_FILE=%s AI=%v",
		cfg.Port, cfg.DBDSN, cfg.ContentDir, cfg.UploadsDir, cfg.LogFile, cfg.GeminiKey != "")
	return cfg
}
