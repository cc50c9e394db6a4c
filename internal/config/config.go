package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once
// at process start and passed by reference to the components that need
// it; nothing reads the environment after Load returns.
type Config struct {
	AppMode     string
	ProjectName string
	Port        string
	LogLevel    string
	CORSOrigins string
	Database    DatabaseConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Mail        MailConfig
}

// DatabaseConfig holds the Postgres DSN components.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig holds the token signing secret.
type JWTConfig struct {
	Secret string
}

// CookieConfig holds refresh-cookie flags.
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// MailConfig holds the SendGrid surface of the email manager.
type MailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	ToEmail        string
}

// Load reads configuration from the .env file and environment variables.
func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: %q (must be 'dev' or 'prod')", appMode)
	}

	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "true"))

	cfg := &Config{
		AppMode:     appMode,
		ProjectName: getEnv("PROJECT_NAME", "jobhub"),
		Port:        getEnv("PORT", "8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnv("BACKEND_CORS_ORIGINS", ""),
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_SERVER", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "jobhub"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET_KEY", ""),
		},
		Cookie: CookieConfig{
			Secure:   secure,
			SameSite: getEnv("COOKIE_SAMESITE", "lax"),
			Domain:   getEnv("COOKIE_DOMAIN", ""),
		},
		Mail: MailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromEmail:      getEnv("MAIL_FROM", ""),
			ToEmail:        getEnv("MAIL_TO", ""),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	return cfg, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// AllowedOrigins returns the CORS allow-list as Fiber expects it.
func (c *Config) AllowedOrigins() string {
	if c.CORSOrigins == "" && c.IsDev() {
		return "*"
	}
	return c.CORSOrigins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
