package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/basel-ax/dalleimg/internal/domain"
)

// DBConfig holds the optional run history database configuration
type DBConfig struct {
	Host            string        `mapstructure:"DB_HOST"`
	Port            int           `mapstructure:"DB_PORT" validate:"gte=0,lte=65535"`
	User            string        `mapstructure:"DB_USER" validate:"required_with=Host"`
	Password        string        `mapstructure:"DB_PASSWORD"`
	Database        string        `mapstructure:"DB_NAME" validate:"required_with=Host"`
	SSLMode         string        `mapstructure:"DB_SSL_MODE"`
	MaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
}

// Config holds all configuration for the application
type Config struct {
	LogLevel       string        `mapstructure:"LOG_LEVEL" validate:"oneof=DEBUG INFO WARN ERROR"`
	LogFormat      string        `mapstructure:"LOG_FORMAT" validate:"oneof=json text"`
	AWSRegion      string        `mapstructure:"AWS_REGION" validate:"required"`
	ImageBucket    string        `mapstructure:"IMAGE_BUCKET" validate:"required_if=StorageBackend s3"`
	ManifestFile   string        `mapstructure:"IMAGE_MANIFEST" validate:"required"`
	ImageSize      string        `mapstructure:"IMAGE_SIZE" validate:"required"`
	ImagePath      string        `mapstructure:"IMAGE_PATH"`
	ImageCount     int           `mapstructure:"IMAGE_COUNT" validate:"gte=1,lte=10"`
	ImageModel     string        `mapstructure:"IMAGE_MODEL" validate:"required"`
	OpenAIAPIKey   string        `mapstructure:"OPENAI_API_KEY" validate:"required"`
	OpenAIBaseURL  string        `mapstructure:"OPENAI_BASE_URL" validate:"omitempty,url"`
	QuoteAPIURL    string        `mapstructure:"QUOTE_API_URL" validate:"required,url"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT" validate:"gt=0"`
	Timezone       string        `mapstructure:"TZ"`
	StorageBackend string        `mapstructure:"STORAGE_BACKEND" validate:"oneof=s3 file sqlite"`
	S3Endpoint     string        `mapstructure:"S3_ENDPOINT" validate:"omitempty,url"`
	StorageDir     string        `mapstructure:"STORAGE_DIR" validate:"required_if=StorageBackend file"`
	SQLitePath     string        `mapstructure:"SQLITE_PATH" validate:"required_if=StorageBackend sqlite"`
	Schedule       string        `mapstructure:"SCHEDULE" validate:"required"`
	HTTPAddr       string        `mapstructure:"HTTP_ADDR" validate:"required"`
	DB             DBConfig      `mapstructure:",squash"`

	location *time.Location
}

var defaults = map[string]any{
	"LOG_LEVEL":            "DEBUG",
	"LOG_FORMAT":           "json",
	"AWS_REGION":           "us-east-1",
	"IMAGE_BUCKET":         "",
	"IMAGE_MANIFEST":       "manifest.json",
	"IMAGE_SIZE":           "1024x1024",
	"IMAGE_PATH":           "images/",
	"IMAGE_COUNT":          1,
	"IMAGE_MODEL":          "dall-e-2",
	"OPENAI_API_KEY":       "",
	"OPENAI_BASE_URL":      "",
	"QUOTE_API_URL":        "https://zenquotes.io/api/random",
	"REQUEST_TIMEOUT":      "30s",
	"TZ":                   "Local",
	"STORAGE_BACKEND":      "s3",
	"S3_ENDPOINT":          "",
	"STORAGE_DIR":          "./data",
	"SQLITE_PATH":          "dalleimg.db",
	"SCHEDULE":             "0 0 5 * * *",
	"HTTP_ADDR":            ":8080",
	"DB_HOST":              "",
	"DB_PORT":              5432,
	"DB_USER":              "",
	"DB_PASSWORD":          "",
	"DB_NAME":              "",
	"DB_SSL_MODE":          "disable",
	"DB_MAX_OPEN_CONNS":    5,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": "5m",
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present; deployed functions have none
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NewDomainError(domain.ErrCodeConfig, "error loading .env file", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeConfig, "error decoding configuration", err)
	}
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.StorageBackend = strings.ToLower(cfg.StorageBackend)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeConfig, "invalid configuration", err)
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeConfig, fmt.Sprintf("invalid TZ %q", cfg.Timezone), err)
	}
	cfg.location = loc

	return &cfg, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Location returns the zone used for manifest timestamps and the schedule
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// ManifestKey returns the storage key of the manifest document
func (c *Config) ManifestKey() string {
	return c.ImagePath + c.ManifestFile
}

// HistoryEnabled reports whether run history should be written to Postgres
func (c *Config) HistoryEnabled() bool {
	return c.DB.Host != ""
}

// GetDSN returns the PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Database, c.DB.SSLMode)
}
