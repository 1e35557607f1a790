package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	if cfg.Server.Port != "8080" || len(cfg.Server.AllowOrigins) != 1 || cfg.Server.AllowOrigins[0] != "*" {
		t.Fatalf("server = %+v", cfg.Server)
	}
	if cfg.Backend.BaseURL != "http://localhost:5000" || cfg.Backend.Timeout != 10*time.Second {
		t.Fatalf("backend = %+v", cfg.Backend)
	}
	if cfg.Upload.MaxRetries != 3 || cfg.Upload.RetryDelay != 1500*time.Millisecond || cfg.Upload.Timeout != time.Minute {
		t.Fatalf("upload = %+v", cfg.Upload)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Workspace.IdleTimeout != 30*time.Minute {
		t.Fatalf("database=%+v workspace=%+v", cfg.Database, cfg.Workspace)
	}
	if cfg.IsProduction() || cfg.Speech.Enabled || cfg.Telemetry.Enabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("APP_ENV", "production")
	v.Set("BACKEND_BASE_URL", "https://api.sigmalearn.dev/")
	v.Set("CORS_ALLOW_ORIGINS", "https://a.dev, ,https://b.dev")
	v.Set("DATABASE_DRIVER", "Postgres")
	v.Set("UPLOAD_MAX_RETRIES", 5)
	cfg := fromViper(v)

	if !cfg.IsProduction() {
		t.Fatalf("env = %q", cfg.Env)
	}
	if cfg.Backend.BaseURL != "https://api.sigmalearn.dev" {
		t.Fatalf("base url = %q", cfg.Backend.BaseURL)
	}
	if len(cfg.Server.AllowOrigins) != 2 || cfg.Server.AllowOrigins[1] != "https://b.dev" {
		t.Fatalf("origins = %v", cfg.Server.AllowOrigins)
	}
	if cfg.Database.Driver != "postgres" || cfg.Upload.MaxRetries != 5 {
		t.Fatalf("database=%+v upload=%+v", cfg.Database, cfg.Upload)
	}
}
