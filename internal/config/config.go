package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	DBDriver      string
	DatabaseDSN   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	TokenSecret   string
	BcryptCost    int
	AdminName     string
	AdminPassword string
	SwaggerHost   string
	LogLevel      string

	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first; real environment
// variables take precedence over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", DriverMySQL),
		DatabaseDSN:   getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/skolmaten?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		BcryptCost:    getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		AdminName:     getEnv("ADMIN_NAME", "adminacc"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		S3Region:      getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
	}
}

// Validate rejects configurations the server must not start with.
// The token secret is never generated implicitly: tokens have to survive restarts.
func (c *Config) Validate() error {
	if c.TokenSecret == "" {
		return fmt.Errorf("TOKEN_SECRET must be set")
	}
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
