package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Storage      StorageConfig
	SMTP         SMTPConfig
	OAuth2Google OAuth2GoogleConfig
	Onboarding   OnboardingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	FrontendURL        string
	CORSAllowedOrigins []string
	UploadMaxSizeMB    int64
	JobExpiryInterval  time.Duration
}

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

type StorageConfig struct {
	Type     string
	BasePath string
	Minio    MinioConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SMTPConfig holds outgoing mail settings; an empty Host disables sending.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Enabled reports whether Google sign-in is configured.
func (c OAuth2GoogleConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURL != ""
}

type OnboardingConfig struct {
	DefaultPassword string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	} else if err != nil {
		slog.Debug("no .env file, using environment only")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrflo"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	uploadMaxSize, err := getEnvInt("UPLOAD_MAX_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}
	jobExpiryInterval, err := time.ParseDuration(getEnv("JOB_EXPIRY_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JOB_EXPIRY_INTERVAL: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
		UploadMaxSizeMB:    int64(uploadMaxSize),
		JobExpiryInterval:  jobExpiryInterval,
	}
	if len(config.App.CORSAllowedOrigins) == 0 {
		config.App.CORSAllowedOrigins = []string{config.App.FrontendURL}
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Storage configuration
	minioSSL, err := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid MINIO_USE_SSL: %w", err)
	}
	config.Storage = StorageConfig{
		Type:     strings.ToLower(getEnv("STORAGE_TYPE", StorageLocal)),
		BasePath: getEnv("STORAGE_BASE_PATH", "./storage"),
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "hrflo"),
			UseSSL:    minioSSL,
		},
	}

	// SMTP configuration
	smtpPort, err := getEnvInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@hrflo.local"),
		FromName: getEnv("SMTP_FROM_NAME", "HR"),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		Scopes:       getEnvSlice("GOOGLE_SCOPES"),
	}

	config.Onboarding = OnboardingConfig{
		DefaultPassword: getEnv("ONBOARDING_DEFAULT_PASSWORD", "ChangeMe123!"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.App.UploadMaxSizeMB <= 0 {
		return fmt.Errorf("UPLOAD_MAX_SIZE_MB must be positive")
	}
	if len(c.Onboarding.DefaultPassword) > 72 {
		return fmt.Errorf("ONBOARDING_DEFAULT_PASSWORD must not exceed 72 bytes")
	}

	switch c.Storage.Type {
	case StorageLocal:
		if c.Storage.BasePath == "" {
			return fmt.Errorf("STORAGE_BASE_PATH is required")
		}
	case StorageMinio:
		if c.Storage.Minio.Endpoint == "" {
			return fmt.Errorf("MINIO_ENDPOINT is required")
		}
		if c.Storage.Minio.AccessKey == "" || c.Storage.Minio.SecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required")
		}
		if c.Storage.Minio.Bucket == "" {
			return fmt.Errorf("MINIO_BUCKET is required")
		}
	default:
		return fmt.Errorf("STORAGE_TYPE must be %q or %q", StorageLocal, StorageMinio)
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// UploadMaxBytes is the upload limit in bytes.
func (c *Config) UploadMaxBytes() int64 {
	return c.App.UploadMaxSizeMB << 20
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
