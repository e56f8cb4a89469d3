package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Logging     LoggingConfig
	OpenAI      OpenAIConfig
	Storage     StorageConfig
	Firebase    FirebaseConfig
	SMTP        SMTPConfig
	Reminders   RemindersConfig
	Aggregation AggregationConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	MigrateOnStart  bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// OpenAIConfig holds Azure OpenAI configuration
type OpenAIConfig struct {
	Endpoint   string
	APIKey     string
	Deployment string
}

// Enabled reports whether the assistant can be reached
func (c OpenAIConfig) Enabled() bool {
	return c.Endpoint != "" && c.APIKey != "" && c.Deployment != ""
}

// StorageConfig holds Azure Blob Storage configuration
type StorageConfig struct {
	AccountName     string
	AccountKey      string
	ReportContainer string
}

// Enabled reports whether reports go to Azure rather than process memory
func (c StorageConfig) Enabled() bool {
	return c.AccountName != "" && c.AccountKey != ""
}

// FirebaseConfig holds Firebase Cloud Messaging configuration
type FirebaseConfig struct {
	CredentialsFile string
}

// Enabled reports whether push notifications are configured
func (c FirebaseConfig) Enabled() bool {
	return c.CredentialsFile != ""
}

// SMTPConfig holds the mail server used by the weekly digest
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether the weekly digest can be sent
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// RemindersConfig holds reminder delivery and background job settings
type RemindersConfig struct {
	Enabled         bool
	SweepCron       string
	RearmCron       string
	MidnightCron    string
	DigestCron      string
	MissedGrace     time.Duration
	JobTimeout      time.Duration
	GeofenceTimeout time.Duration
	DefaultRadius   float64
	LocationMaxAge  time.Duration
}

// AggregationConfig holds the dashboard aggregation tunables
type AggregationConfig struct {
	StreakCap           int
	AdherenceWindowDays int
	RecentActivityLimit int
}

// Load reads configuration from an optional .env file, environment variables and defaults
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	// Read from environment variables
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvVars(v)

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.shutdowntimeout", 30*time.Second)
	v.SetDefault("server.allowedorigins", []string{"*"})

	// Database defaults
	v.SetDefault("database.maxconns", 25)
	v.SetDefault("database.minconns", 2)
	v.SetDefault("database.connmaxlifetime", 5*time.Minute)
	v.SetDefault("database.migrateonstart", true)

	// Azure Storage defaults
	v.SetDefault("storage.reportcontainer", "adherence-reports")

	// SMTP defaults
	v.SetDefault("smtp.port", 587)

	// Reminder defaults
	v.SetDefault("reminders.enabled", true)
	v.SetDefault("reminders.sweepcron", "*/15 * * * *")
	v.SetDefault("reminders.rearmcron", "*/5 * * * *")
	v.SetDefault("reminders.midnightcron", "1 0 * * *")
	v.SetDefault("reminders.digestcron", "0 7 * * 1")
	v.SetDefault("reminders.missedgrace", 2*time.Hour)
	v.SetDefault("reminders.jobtimeout", 2*time.Minute)
	v.SetDefault("reminders.geofencetimeout", 5*time.Second)
	v.SetDefault("reminders.defaultradius", 100.0)
	v.SetDefault("reminders.locationmaxage", 15*time.Minute)

	// Aggregation defaults
	v.SetDefault("aggregation.streakcap", 365)
	v.SetDefault("aggregation.adherencewindowdays", 7)
	v.SetDefault("aggregation.recentactivitylimit", 5)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.environment", "ENV", "ENVIRONMENT")
	v.BindEnv("server.shutdowntimeout", "SHUTDOWN_TIMEOUT")
	v.BindEnv("server.allowedorigins", "CORS_ALLOWED_ORIGINS")

	// Database
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("database.maxconns", "DATABASE_MAX_CONNS")
	v.BindEnv("database.migrateonstart", "DATABASE_MIGRATE_ON_START")

	// Azure OpenAI
	v.BindEnv("openai.endpoint", "AZURE_OPENAI_ENDPOINT")
	v.BindEnv("openai.apikey", "AZURE_OPENAI_API_KEY")
	v.BindEnv("openai.deployment", "AZURE_OPENAI_DEPLOYMENT")

	// Azure Storage
	v.BindEnv("storage.accountname", "AZURE_STORAGE_ACCOUNT_NAME")
	v.BindEnv("storage.accountkey", "AZURE_STORAGE_ACCOUNT_KEY")
	v.BindEnv("storage.reportcontainer", "AZURE_STORAGE_REPORT_CONTAINER")

	// Firebase
	v.BindEnv("firebase.credentialsfile", "FIREBASE_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS")

	// SMTP
	v.BindEnv("smtp.host", "SMTP_HOST")
	v.BindEnv("smtp.port", "SMTP_PORT")
	v.BindEnv("smtp.username", "SMTP_USERNAME")
	v.BindEnv("smtp.password", "SMTP_PASSWORD")
	v.BindEnv("smtp.from", "SMTP_FROM")

	// Reminders
	v.BindEnv("reminders.enabled", "REMINDERS_ENABLED")
	v.BindEnv("reminders.sweepcron", "REMINDERS_SWEEP_CRON")
	v.BindEnv("reminders.rearmcron", "REMINDERS_REARM_CRON")
	v.BindEnv("reminders.digestcron", "REMINDERS_DIGEST_CRON")
	v.BindEnv("reminders.missedgrace", "REMINDERS_MISSED_GRACE")
	v.BindEnv("reminders.geofencetimeout", "REMINDERS_GEOFENCE_TIMEOUT")
	v.BindEnv("reminders.defaultradius", "REMINDERS_DEFAULT_RADIUS")
	v.BindEnv("reminders.locationmaxage", "REMINDERS_LOCATION_MAX_AGE")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")
	v.BindEnv("logging.format", "LOG_FORMAT")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdowntimeout must be positive")
	}

	if c.Reminders.GeofenceTimeout <= 0 {
		return fmt.Errorf("reminders.geofencetimeout must be positive")
	}

	if c.Reminders.DefaultRadius < 0 {
		return fmt.Errorf("reminders.defaultradius must not be negative")
	}

	if c.Aggregation.StreakCap <= 0 || c.Aggregation.AdherenceWindowDays <= 0 || c.Aggregation.RecentActivityLimit <= 0 {
		return fmt.Errorf("aggregation settings must be positive")
	}

	if (c.Storage.AccountName == "") != (c.Storage.AccountKey == "") {
		return fmt.Errorf("azure storage requires both account name and key")
	}

	return nil
}
