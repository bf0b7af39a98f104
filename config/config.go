package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	JWT      JWTConfig
	Accounts DatabaseConfig
	Content  DatabaseConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

func (c *JWTConfig) ExpirationDuration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", ""),
			ExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		},
		Accounts: DatabaseConfig{
			Host:     getEnv("ACCOUNTS_DB_HOST", "localhost"),
			Port:     getEnv("ACCOUNTS_DB_PORT", "5432"),
			User:     getEnv("ACCOUNTS_DB_USER", "postgres"),
			Password: getEnv("ACCOUNTS_DB_PASSWORD", "postgres"),
			Name:     getEnv("ACCOUNTS_DB_NAME", "tradinglens_accounts"),
			SSLMode:  getEnv("ACCOUNTS_DB_SSLMODE", "disable"),
		},
		Content: DatabaseConfig{
			Host:     getEnv("CONTENT_DB_HOST", "localhost"),
			Port:     getEnv("CONTENT_DB_PORT", "5432"),
			User:     getEnv("CONTENT_DB_USER", "postgres"),
			Password: getEnv("CONTENT_DB_PASSWORD", "postgres"),
			Name:     getEnv("CONTENT_DB_NAME", "tradinglens_content"),
			SSLMode:  getEnv("CONTENT_DB_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
