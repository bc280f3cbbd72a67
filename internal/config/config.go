package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	AdminMobile   string // Seeded admin mobile number
	AdminEmail    string // Seeded admin email
	AdminPassword string // Seeded admin password
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:       os.Getenv("APP_PORT"),                         // Application port
		DBUser:        os.Getenv("DB_USER"),                          // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                      // Database password
		DBHost:        os.Getenv("DB_HOST"),                          // Database host
		DBPort:        os.Getenv("DB_PORT"),                          // Database port
		DBName:        os.Getenv("DB_NAME"),                          // Database name
		RedisAddr:     os.Getenv("REDIS_ADDR"),                       // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                       // Redis password
		RedisDB:       redisDB,                                       // Redis database number
		AdminMobile:   getenv("ADMIN_MOBILE", "9999999999"),          // Admin mobile, fixed default
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@recharge.local"), // Admin email
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),          // Admin password (change in prod)
		IsProd:        os.Getenv("IS_PROD") == "true",                // Is production environment
	}
}

// DSN builds the MySQL Data Source Name from the DB settings
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getenv returns the environment variable or a fallback when unset
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
