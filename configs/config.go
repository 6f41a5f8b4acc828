package config

import (
	"os"
	"strconv"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	GeminiAPIKey string

	VeilleModel string
	PostModel   string
	ImageModel  string
	VideoModel  string
	SpeechModel string

	PostgresURI string
	RedisURI    string
	DataDir     string
	FrontendURL string
	Port        string

	VideoPollSeconds  int
	VideoTimeoutMins  int
	VeilleRefreshSpec string

	R2 R2
}

func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),

		VeilleModel: getEnv("VEILLE_MODEL", "gemini-3-flash-preview"),
		PostModel:   getEnv("POST_MODEL", "gemini-3-pro-preview"),
		ImageModel:  getEnv("IMAGE_MODEL", "gemini-2.5-flash-image"),
		VideoModel:  getEnv("VIDEO_MODEL", "veo-3.1-fast-generate-preview"),
		SpeechModel: getEnv("SPEECH_MODEL", "gemini-2.5-flash-preview-tts"),

		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", "127.0.0.1:6379"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		Port:        getEnv("PORT", "3000"),

		VideoPollSeconds:  getEnvInt("VIDEO_POLL_SECONDS", 10),
		VideoTimeoutMins:  getEnvInt("VIDEO_TIMEOUT_MINUTES", 10),
		VeilleRefreshSpec: getEnv("VEILLE_REFRESH_SPEC", "@every 6h0m0s"),

		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
