package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

// clearEnv unsets every variable LoadConfig reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "SERVER_MODE", "DB_DRIVER", "DATABASE_URL", "DB_NAME", "DB_MAX_CONNS",
		"DB_MIN_CONNS", "DB_CONN_MAX_LIFETIME", "DB_MIGRATIONS_DIR", "JWT_SECRET",
		"JWT_ACCESS_TOKEN_EXPIRATION", "JWT_ISSUER", "LOG_LEVEL", "LOG_FORMAT", "ADMIN_EMAIL",
		"ADMIN_PASSWORD", "ADMIN_NAME", "CORS_ALLOWED_ORIGINS", "CAREERS_CATALOG_PATH",
	} {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		}
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, apperrors.ErrConfigurationMissing) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigurationMissing", err)
	}
}

func TestLoadConfigMissingJWTSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/mentorbridge")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, apperrors.ErrConfigurationMissing) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigurationMissing", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/mentorbridge")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Driver = %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Admin.Email != "admin@mentorbridge.com" || cfg.Admin.Password != "admin123" {
		t.Errorf("Admin = %+v, want default credentials", cfg.Admin)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: "9000"
database:
  driver: postgres
  url: postgres://yaml/db
  max_conns: 5
jwt:
  secret: from-yaml
cors:
  allowed_origins: ["http://yaml.local"]
`)
	t.Setenv("DATABASE_URL", "mongodb://env:27017")
	t.Setenv("DB_DRIVER", "mongo")
	t.Setenv("DB_MAX_CONNS", "42")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local, http://b.local,")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %q, want 9000 from yaml", cfg.Server.Port)
	}
	if cfg.Database.URL != "mongodb://env:27017" {
		t.Errorf("URL = %q, want env value", cfg.Database.URL)
	}
	if cfg.Database.Driver != DriverMongo {
		t.Errorf("Driver = %q, want mongo", cfg.Database.Driver)
	}
	if cfg.Database.MaxConns != 42 {
		t.Errorf("MaxConns = %d, want 42", cfg.Database.MaxConns)
	}
	if cfg.JWT.Secret != "from-yaml" {
		t.Errorf("Secret = %q, want from-yaml", cfg.JWT.Secret)
	}
	want := []string{"http://a.local", "http://b.local"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "sqlite"}},
		{"bad int", map[string]string{"DB_MAX_CONNS": "many"}},
		{"bad duration", map[string]string{"JWT_ACCESS_TOKEN_EXPIRATION": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DATABASE_URL", "postgres://localhost/mentorbridge")
			t.Setenv("JWT_SECRET", "secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
				t.Errorf("LoadConfig() error = nil, want error")
			}
		})
	}
}
