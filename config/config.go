package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort            string
	AppMode            string
	AllowedOrigins     []string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
	KakaoClientID      string
	KakaoClientSecret  string
	KakaoRedirectURI   string
	KakaoAuthBaseURL   string
	KakaoAPIBaseURL    string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		AppMode:            getEnv("APP_MODE", "debug"),
		AllowedOrigins:     getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		AWSRegion:          getEnv("AWS_REGION", "ap-northeast-2"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Bucket:           getEnv("AWS_S3_BUCKET_NAME", ""),
		KakaoClientID:      getEnv("KAKAO_CLIENT_ID", ""),
		KakaoClientSecret:  getEnv("KAKAO_CLIENT_SECRET", ""),
		KakaoRedirectURI:   getEnv("KAKAO_REDIRECT_URI", ""),
		KakaoAuthBaseURL:   getEnv("KAKAO_AUTH_BASE_URL", "https://kauth.kakao.com"),
		KakaoAPIBaseURL:    getEnv("KAKAO_API_BASE_URL", "https://kapi.kakao.com"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsSlice(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
