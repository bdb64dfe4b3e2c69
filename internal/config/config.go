package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	Extract ExtractConfig
	Verify  VerifyConfig
	Chat    ChatConfig
	CORS    CORSConfig
	Email   EmailConfig
}

// EmailConfig holds compliance alert delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	AlertTo     string `mapstructure:"alert_to"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExtractProviderConfig holds settings for a single LLM extraction provider.
type ExtractProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// OCRConfig holds optical character recognition settings. An empty
// provider disables OCR.
type OCRConfig struct {
	Provider string `mapstructure:"provider"`
	Region   string `mapstructure:"region"`
}

// ExtractConfig holds LLM field extraction settings with fallback support.
type ExtractConfig struct {
	Primary   ExtractProviderConfig `mapstructure:"primary"`
	Secondary ExtractProviderConfig `mapstructure:"secondary"`
	OCR       OCRConfig             `mapstructure:"ocr"`
}

// PrimaryConfig returns the primary extraction provider config, or nil if not configured.
func (e *ExtractConfig) PrimaryConfig() *ExtractProviderConfig {
	if e.Primary.Provider != "" {
		return &e.Primary
	}
	return nil
}

// SecondaryConfig returns the secondary extraction provider config, or nil if not configured.
func (e *ExtractConfig) SecondaryConfig() *ExtractProviderConfig {
	if e.Secondary.Provider != "" {
		return &e.Secondary
	}
	return nil
}

// VerifyConfig holds external verification provider settings.
type VerifyConfig struct {
	APINinjasKey     string `mapstructure:"api_ninjas_key"`
	APINinjasPremium bool   `mapstructure:"api_ninjas_premium"`
	GeoapifyKey      string `mapstructure:"geoapify_key"`
	PerplexityKey    string `mapstructure:"perplexity_key"`
	PerplexityModel  string `mapstructure:"perplexity_model"`
	ExaKey           string `mapstructure:"exa_key"`
	Concurrency      int    `mapstructure:"concurrency"`
	TimeoutSecs      int    `mapstructure:"timeout_secs"`
}

// ChatConfig holds conversation settings.
type ChatConfig struct {
	MaxDocChars   int `mapstructure:"max_doc_chars"`
	HistoryWindow int `mapstructure:"history_window"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for session archival.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LCINTEL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LCINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "lcintel")
	v.SetDefault("db.password", "lcintel_secret")
	v.SetDefault("db.name", "lcintel_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "eu-west-1")
	v.SetDefault("s3.bucket", "lcintel-archive")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Extraction provider defaults
	v.SetDefault("extract.primary.provider", "gemini")
	v.SetDefault("extract.primary.api_key", "")
	v.SetDefault("extract.primary.default_model", "gemini-2.0-flash")
	v.SetDefault("extract.primary.max_retries", 2)
	v.SetDefault("extract.primary.timeout_secs", 120)
	v.SetDefault("extract.secondary.provider", "")
	v.SetDefault("extract.secondary.api_key", "")
	v.SetDefault("extract.secondary.default_model", "")
	v.SetDefault("extract.secondary.max_retries", 2)
	v.SetDefault("extract.secondary.timeout_secs", 120)
	v.SetDefault("extract.ocr.provider", "")
	v.SetDefault("extract.ocr.region", "eu-west-1")

	// Verification defaults
	v.SetDefault("verify.api_ninjas_key", "")
	v.SetDefault("verify.api_ninjas_premium", false)
	v.SetDefault("verify.geoapify_key", "")
	v.SetDefault("verify.perplexity_key", "")
	v.SetDefault("verify.perplexity_model", "sonar")
	v.SetDefault("verify.exa_key", "")
	v.SetDefault("verify.concurrency", 5)
	v.SetDefault("verify.timeout_secs", 30)

	// Chat defaults
	v.SetDefault("chat.max_doc_chars", 8000)
	v.SetDefault("chat.history_window", 10)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-west-1")
	v.SetDefault("email.from_address", "alerts@lcintel.local")
	v.SetDefault("email.from_name", "LC Intel")
	v.SetDefault("email.alert_to", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "LCINTEL_SERVER_PORT",
		"server.read_timeout":  "LCINTEL_SERVER_READ_TIMEOUT",
		"server.write_timeout": "LCINTEL_SERVER_WRITE_TIMEOUT",
		"server.environment":   "LCINTEL_SERVER_ENVIRONMENT",
		"db.host":              "LCINTEL_DB_HOST",
		"db.port":              "LCINTEL_DB_PORT",
		"db.user":              "LCINTEL_DB_USER",
		"db.password":          "LCINTEL_DB_PASSWORD",
		"db.name":              "LCINTEL_DB_NAME",
		"db.sslmode":           "LCINTEL_DB_SSLMODE",
		"db.max_open":          "LCINTEL_DB_MAX_OPEN",
		"db.max_idle":          "LCINTEL_DB_MAX_IDLE",
		"s3.region":            "LCINTEL_S3_REGION",
		"s3.bucket":            "LCINTEL_S3_BUCKET",
		"s3.endpoint":          "LCINTEL_S3_ENDPOINT",
		"s3.access_key":        "LCINTEL_S3_ACCESS_KEY",
		"s3.secret_key":        "LCINTEL_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "LCINTEL_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "LCINTEL_S3_PRESIGN_EXPIRY",
		"log.level":            "LCINTEL_LOG_LEVEL",
		"log.format":           "LCINTEL_LOG_FORMAT",
		"cors.allowed_origins": "LCINTEL_CORS_ALLOWED_ORIGINS",
		"extract.primary.provider":        "LCINTEL_EXTRACT_PRIMARY_PROVIDER",
		"extract.primary.api_key":         "LCINTEL_EXTRACT_PRIMARY_API_KEY",
		"extract.primary.default_model":   "LCINTEL_EXTRACT_PRIMARY_DEFAULT_MODEL",
		"extract.primary.max_retries":     "LCINTEL_EXTRACT_PRIMARY_MAX_RETRIES",
		"extract.primary.timeout_secs":    "LCINTEL_EXTRACT_PRIMARY_TIMEOUT_SECS",
		"extract.secondary.provider":      "LCINTEL_EXTRACT_SECONDARY_PROVIDER",
		"extract.secondary.api_key":       "LCINTEL_EXTRACT_SECONDARY_API_KEY",
		"extract.secondary.default_model": "LCINTEL_EXTRACT_SECONDARY_DEFAULT_MODEL",
		"extract.secondary.max_retries":   "LCINTEL_EXTRACT_SECONDARY_MAX_RETRIES",
		"extract.secondary.timeout_secs":  "LCINTEL_EXTRACT_SECONDARY_TIMEOUT_SECS",
		"extract.ocr.provider":            "LCINTEL_EXTRACT_OCR_PROVIDER",
		"extract.ocr.region":              "LCINTEL_EXTRACT_OCR_REGION",
		"verify.api_ninjas_key":     "LCINTEL_VERIFY_API_NINJAS_KEY",
		"verify.api_ninjas_premium": "LCINTEL_VERIFY_API_NINJAS_PREMIUM",
		"verify.geoapify_key":       "LCINTEL_VERIFY_GEOAPIFY_KEY",
		"verify.perplexity_key":     "LCINTEL_VERIFY_PERPLEXITY_KEY",
		"verify.perplexity_model":   "LCINTEL_VERIFY_PERPLEXITY_MODEL",
		"verify.exa_key":            "LCINTEL_VERIFY_EXA_KEY",
		"verify.concurrency":        "LCINTEL_VERIFY_CONCURRENCY",
		"verify.timeout_secs":       "LCINTEL_VERIFY_TIMEOUT_SECS",
		"chat.max_doc_chars":        "LCINTEL_CHAT_MAX_DOC_CHARS",
		"chat.history_window":       "LCINTEL_CHAT_HISTORY_WINDOW",
		"email.provider":            "LCINTEL_EMAIL_PROVIDER",
		"email.region":              "LCINTEL_EMAIL_REGION",
		"email.from_address":        "LCINTEL_EMAIL_FROM_ADDRESS",
		"email.from_name":           "LCINTEL_EMAIL_FROM_NAME",
		"email.alert_to":            "LCINTEL_EMAIL_ALERT_TO",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LCINTEL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LCINTEL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Extract = ExtractConfig{
		Primary: ExtractProviderConfig{
			Provider:     v.GetString("extract.primary.provider"),
			APIKey:       v.GetString("extract.primary.api_key"),
			DefaultModel: v.GetString("extract.primary.default_model"),
			MaxRetries:   v.GetInt("extract.primary.max_retries"),
			TimeoutSecs:  v.GetInt("extract.primary.timeout_secs"),
		},
		Secondary: ExtractProviderConfig{
			Provider:     v.GetString("extract.secondary.provider"),
			APIKey:       v.GetString("extract.secondary.api_key"),
			DefaultModel: v.GetString("extract.secondary.default_model"),
			MaxRetries:   v.GetInt("extract.secondary.max_retries"),
			TimeoutSecs:  v.GetInt("extract.secondary.timeout_secs"),
		},
	}

	cfg.Verify = VerifyConfig{
		APINinjasKey:     v.GetString("verify.api_ninjas_key"),
		APINinjasPremium: v.GetBool("verify.api_ninjas_premium"),
		GeoapifyKey:      v.GetString("verify.geoapify_key"),
		PerplexityKey:    v.GetString("verify.perplexity_key"),
		PerplexityModel:  v.GetString("verify.perplexity_model"),
		ExaKey:           v.GetString("verify.exa_key"),
		Concurrency:      v.GetInt("verify.concurrency"),
		TimeoutSecs:      v.GetInt("verify.timeout_secs"),
	}

	cfg.Chat = ChatConfig{
		MaxDocChars:   v.GetInt("chat.max_doc_chars"),
		HistoryWindow: v.GetInt("chat.history_window"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		AlertTo:     v.GetString("email.alert_to"),
	}

	return cfg, nil
}
