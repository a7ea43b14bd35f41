package config

import (
	"os"
	"strconv"
)

// Storage backend types.
const (
	StorageTypeLocal = "local"
	StorageTypeMinIO = "minio"
)

// StorageConfig selects and configures the content storage backend.
type StorageConfig struct {
	Type     string
	LocalDir string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// TutorConfig holds settings for the AI tutor responder.
// When GeminiAPIKey is empty the canned responder is used.
type TutorConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port         string
	AllowOrigins string
	Storage      StorageConfig
	MinIO        MinIOConfig
	Tutor        TutorConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:         getEnv("PORT", "8000"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		Storage: StorageConfig{
			Type:     getEnv("STORAGE_TYPE", StorageTypeLocal),
			LocalDir: getEnv("STORAGE_LOCAL_DIR", "storage"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Tutor: TutorConfig{
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
