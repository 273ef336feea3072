package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port"`
		Mode        string `yaml:"mode"`
		StoragePath string `yaml:"storage_path"`
		FrontendURL string `yaml:"frontend_url"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host"`
		Port            string `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		DBName          string `yaml:"dbname"`
		SSLMode         string `yaml:"sslmode"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret"`
		TokenExpiration string `yaml:"token_expiration"`
		Issuer          string `yaml:"issuer"`
	} `yaml:"jwt"`

	OAuth struct {
		GoogleClientID     string `yaml:"google_client_id"`
		GoogleClientSecret string `yaml:"google_client_secret"`
		RedirectURL        string `yaml:"redirect_url"`
		AllowedEmailDomain string `yaml:"allowed_email_domain"`
	} `yaml:"oauth"`

	SMTP struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		Username  string `yaml:"username"`
		Password  string `yaml:"password"`
		FromName  string `yaml:"from_name"`
		FromEmail string `yaml:"from_email"`
	} `yaml:"smtp"`

	Storage struct {
		Driver          string `yaml:"driver"` // local or s3
		S3Endpoint      string `yaml:"s3_endpoint"`
		S3Region        string `yaml:"s3_region"`
		S3AccessKey     string `yaml:"s3_access_key"`
		S3SecretKey     string `yaml:"s3_secret_key"`
		S3Bucket        string `yaml:"s3_bucket"`
		S3PublicBaseURL string `yaml:"s3_public_base_url"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional .env file, a YAML file, and
// environment variable overrides, in that order of increasing precedence.
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"
	config.Server.FrontendURL = "http://localhost:3000"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "campushub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.TokenExpiration = "24h"
	config.JWT.Issuer = "campushub.app"

	config.Storage.Driver = "local"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	setIfPresent(&config.Server.Port, "SERVER_PORT")
	setIfPresent(&config.Server.Mode, "SERVER_MODE")
	setIfPresent(&config.Server.StoragePath, "STORAGE_PATH")
	setIfPresent(&config.Server.FrontendURL, "FRONTEND_URL")

	setIfPresent(&config.Database.Host, "DB_HOST")
	setIfPresent(&config.Database.Port, "DB_PORT")
	setIfPresent(&config.Database.User, "DB_USER")
	setIfPresent(&config.Database.Password, "DB_PASSWORD")
	setIfPresent(&config.Database.DBName, "DB_NAME")
	setIfPresent(&config.Database.SSLMode, "DB_SSLMODE")

	setIfPresent(&config.JWT.Secret, "JWT_SECRET")
	setIfPresent(&config.JWT.TokenExpiration, "JWT_TOKEN_EXPIRATION")
	setIfPresent(&config.JWT.Issuer, "JWT_ISSUER")

	setIfPresent(&config.OAuth.GoogleClientID, "GOOGLE_CLIENT_ID")
	setIfPresent(&config.OAuth.GoogleClientSecret, "GOOGLE_CLIENT_SECRET")
	setIfPresent(&config.OAuth.RedirectURL, "GOOGLE_CALLBACK_URL")
	setIfPresent(&config.OAuth.AllowedEmailDomain, "ALLOWED_EMAIL_DOMAIN")

	setIfPresent(&config.SMTP.Host, "MAIL_HOST")
	setIfPresent(&config.SMTP.Username, "MAIL_USER")
	setIfPresent(&config.SMTP.Password, "MAIL_PASS")
	setIfPresent(&config.SMTP.FromName, "MAIL_FROM_NAME")
	setIfPresent(&config.SMTP.FromEmail, "MAIL_FROM")
	if port := os.Getenv("MAIL_PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil {
			config.SMTP.Port = p
		}
	}

	setIfPresent(&config.Storage.Driver, "STORAGE_DRIVER")
	setIfPresent(&config.Storage.S3Endpoint, "S3_ENDPOINT")
	setIfPresent(&config.Storage.S3Region, "S3_REGION")
	setIfPresent(&config.Storage.S3AccessKey, "S3_ACCESS_KEY")
	setIfPresent(&config.Storage.S3SecretKey, "S3_SECRET_KEY")
	setIfPresent(&config.Storage.S3Bucket, "S3_BUCKET")
	setIfPresent(&config.Storage.S3PublicBaseURL, "S3_PUBLIC_BASE_URL")

	setIfPresent(&config.Logging.Level, "LOG_LEVEL")
	setIfPresent(&config.Logging.Format, "LOG_FORMAT")
}

func setIfPresent(dst *string, key string) {
	if value, exists := os.LookupEnv(key); exists {
		*dst = value
	}
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	if config.Storage.Driver != "local" && config.Storage.Driver != "s3" {
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	return nil
}

// GetPostgresConnectionString returns the postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
