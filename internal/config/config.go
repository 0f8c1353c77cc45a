package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Ai     AIConfig
	Limits LimitsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	IngestTopicName    string
}

type AIConfig struct {
	SessionTTLMinutes int
	ChunkSize         int
	ChunkOverlap      int
	TopK              int
	HistoryWindow     int
}

type LimitsConfig struct {
	MaxBodyBytes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			IngestTopicName:    getEnv("ACTIVITY_TOPIC_NAME", "SESSION_ACTIVITY"),
		},
		Ai: AIConfig{
			SessionTTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 30),
			ChunkSize:         getEnvAsInt("CHUNK_SIZE", 2000),
			ChunkOverlap:      getEnvAsInt("CHUNK_OVERLAP", 400),
			TopK:              getEnvAsInt("RETRIEVAL_TOP_K", 6),
			HistoryWindow:     getEnvAsInt("HISTORY_WINDOW", 6),
		},
		Limits: LimitsConfig{
			MaxBodyBytes: getEnvAsInt("MAX_BODY_BYTES", 15*1024*1024),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
