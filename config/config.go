package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Postgres connection settings
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// JWT settings
	JWTSecret string

	// Object storage (S3 compatible) settings
	StorageEndpoint  string
	StorageRegion    string
	StorageBucket    string
	StorageAccessKey string
	StorageSecretKey string

	// Server settings
	ServerPort      string
	AllowedOrigins  string
	DefaultPassword string
)

// LoadConfig loads configuration from the environment, falling back to a .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "photoarena")

	JWTSecret = getEnv("JWT_SECRET", "")
	if JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set, tokens will not survive restarts")
	}

	StorageEndpoint = getEnv("STORAGE_ENDPOINT", "")
	StorageRegion = getEnv("STORAGE_REGION", "auto")
	StorageBucket = getEnv("STORAGE_BUCKET", "photoarena")
	StorageAccessKey = getEnv("STORAGE_ACCESS_KEY", "")
	StorageSecretKey = getEnv("STORAGE_SECRET_KEY", "")

	ServerPort = getEnv("SERVER_PORT", "8080")
	AllowedOrigins = getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
