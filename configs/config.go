package config

import "os"

type ExportStorage struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
}

type Config struct {
	PostgresURI   string
	RedisURI      string
	FrontendURL   string
	JWTSecret     string
	ListenAddr    string
	ExportStorage ExportStorage
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", "127.0.0.1:6379"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		JWTSecret:   getEnv("JWT_SECRET", "dev_jwt_secret_change_in_production"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":5000"),
		ExportStorage: ExportStorage{
			AccountID:  getEnv("EXPORT_STORAGE_ACCOUNT_ID", ""),
			AccessKey:  getEnv("EXPORT_STORAGE_ACCESS_KEY", ""),
			SecretKey:  getEnv("EXPORT_STORAGE_SECRET_KEY", ""),
			BucketName: getEnv("EXPORT_STORAGE_BUCKET", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
