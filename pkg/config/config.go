package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	Environment       string
	BackendAPIURL     string
	BackendTimeout    time.Duration
	CatalogURL        string
	CatalogTenant     string
	ImageHostURL      string
	ImageCloudName    string
	ImageUploadPreset string
	JWTSecret         string
	JWTExpiry         int64
	AdminUsername     string
	AdminPassword     string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		BackendAPIURL:     getEnv("BACKEND_API_URL", "http://localhost:5000/api"),
		BackendTimeout:    time.Duration(getEnvAsInt64("BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		CatalogURL:        getEnv("GAME_CATALOG_URL", ""),
		CatalogTenant:     getEnv("GAME_CATALOG_TENANT", "sg8"),
		ImageHostURL:      getEnv("IMAGE_HOST_URL", "https://api.cloudinary.com/v1_1"),
		ImageCloudName:    getEnv("IMAGE_CLOUD_NAME", ""),
		ImageUploadPreset: getEnv("IMAGE_UPLOAD_PRESET", ""),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:         getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
