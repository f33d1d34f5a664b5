package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type JWT struct {
	AccessSecret         string
	RefreshSecret        string
	EmailVerifySecret    string
	ForgotPasswordSecret string

	AccessDuration         time.Duration
	RefreshDuration        time.Duration
	EmailVerifyDuration    time.Duration
	ForgotPasswordDuration time.Duration
}

type Config struct {
	ServerPort     int
	DB             DB
	MinIO          MinIO
	JWT            JWT
	UploadImageDir string
	UploadVideoDir string
	MaxUploadSize  int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "twitterclone"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "medias"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadJWT() JWT {
	return JWT{
		AccessSecret:         getEnv("JWT_ACCESS_SECRET", ""),
		RefreshSecret:        getEnv("JWT_REFRESH_SECRET", ""),
		EmailVerifySecret:    getEnv("JWT_EMAIL_VERIFY_SECRET", ""),
		ForgotPasswordSecret: getEnv("JWT_FORGOT_PASSWORD_SECRET", ""),

		AccessDuration:         parseDuration(getEnv("JWT_ACCESS_DURATION", "15m"), 15*time.Minute),
		RefreshDuration:        parseDuration(getEnv("JWT_REFRESH_DURATION", "2400h"), 100*24*time.Hour),
		EmailVerifyDuration:    parseDuration(getEnv("JWT_EMAIL_VERIFY_DURATION", "168h"), 7*24*time.Hour),
		ForgotPasswordDuration: parseDuration(getEnv("JWT_FORGOT_PASSWORD_DURATION", "168h"), 7*24*time.Hour),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:     getEnvAsInt("SERVER_PORT", 8080),
		DB:             LoadDB(),
		MinIO:          LoadMinIO(),
		JWT:            LoadJWT(),
		UploadImageDir: getEnv("UPLOAD_IMAGE_DIR", "uploads/images"),
		UploadVideoDir: getEnv("UPLOAD_VIDEO_DIR", "uploads/videos"),
		MaxUploadSize:  getEnvAsInt64("MAX_UPLOAD_SIZE", 10*1024*1024),
	}
}
