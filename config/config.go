package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Env       string
	Server    Server
	Backend   Backend
	Upload    Upload
	Database  Database
	Speech    Speech
	Telemetry Telemetry
	Workspace Workspace
}

type Server struct {
	Port         string
	AllowOrigins []string
}

type Backend struct {
	BaseURL string
	Timeout time.Duration
}

type Upload struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	MaxBytes   int64
}

type Database struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string `json:"-"`
	Name     string
	Path     string
}

type Speech struct {
	Enabled         bool
	LanguageCode    string
	CredentialsFile string
}

type Telemetry struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	SampleRatio float64
}

type Workspace struct {
	IdleTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("BACKEND_BASE_URL", "http://localhost:5000")
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)

	v.SetDefault("UPLOAD_TIMEOUT_SECONDS", 60)
	v.SetDefault("UPLOAD_MAX_RETRIES", 3)
	v.SetDefault("UPLOAD_RETRY_DELAY_MS", 1500)
	v.SetDefault("UPLOAD_MAX_BYTES", 20<<20)

	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_PATH", "sigmalearn.db")

	v.SetDefault("SPEECH_ENABLED", false)
	v.SetDefault("SPEECH_LANGUAGE_CODE", "en-US")

	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "sigmalearn-web")
	v.SetDefault("OTEL_SAMPLER_RATIO", 0.1)

	v.SetDefault("WORKSPACE_IDLE_MINUTES", 30)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	cfg := fromViper(v)
	log.Info().Interface("config", cfg).Msg("Config loaded")
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Env = v.GetString("APP_ENV")

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.AllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))

	config.Backend.BaseURL = strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/")
	config.Backend.Timeout = time.Duration(v.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second

	config.Upload.Timeout = time.Duration(v.GetInt("UPLOAD_TIMEOUT_SECONDS")) * time.Second
	config.Upload.MaxRetries = v.GetInt("UPLOAD_MAX_RETRIES")
	config.Upload.RetryDelay = time.Duration(v.GetInt("UPLOAD_RETRY_DELAY_MS")) * time.Millisecond
	config.Upload.MaxBytes = v.GetInt64("UPLOAD_MAX_BYTES")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.Path = v.GetString("DATABASE_PATH")

	config.Speech.Enabled = v.GetBool("SPEECH_ENABLED")
	config.Speech.LanguageCode = v.GetString("SPEECH_LANGUAGE_CODE")
	config.Speech.CredentialsFile = v.GetString("SPEECH_CREDENTIALS_FILE")

	config.Telemetry.Enabled = v.GetBool("OTEL_ENABLED")
	config.Telemetry.ServiceName = v.GetString("OTEL_SERVICE_NAME")
	config.Telemetry.Endpoint = v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")
	config.Telemetry.SampleRatio = v.GetFloat64("OTEL_SAMPLER_RATIO")

	config.Workspace.IdleTimeout = time.Duration(v.GetInt("WORKSPACE_IDLE_MINUTES")) * time.Minute

	return &config
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
