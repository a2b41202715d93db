package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beangen.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
connection:
  driver: postgres
  dsn: "host=localhost dbname=app user=app sslmode=disable"
output:
  package: beans
  dir: ./internal/beans
  overwrite: true
tables:
  - users
  - orders
log:
  level: warn
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Connection.Driver != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.Connection.Driver)
	}
	if cfg.Output.Package != "beans" || !cfg.Output.Overwrite {
		t.Errorf("unexpected output config: %+v", cfg.Output)
	}
	if len(cfg.Tables) != 2 || cfg.Tables[0] != "users" {
		t.Errorf("unexpected tables: %v", cfg.Tables)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
connection:
  dsn: "app.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Connection.Driver != "sqlite3" {
		t.Errorf("expected sqlite3 default, got %s", cfg.Connection.Driver)
	}
	if cfg.Output.Package != "models" || cfg.Output.Dir != "./models" {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("BEANGEN_DRIVER", "mysql")
	t.Setenv("BEANGEN_DSN", "app:app@/appdb")

	path := writeConfig(t, "output:\n  package: beans\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Connection.Driver != "mysql" || cfg.Connection.DSN != "app:app@/appdb" {
		t.Errorf("env fallback not applied: %+v", cfg.Connection)
	}
}

func TestValidation(t *testing.T) {
	t.Run("MissingDSN", func(t *testing.T) {
		path := writeConfig(t, "connection:\n  driver: sqlite3\n")
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "dsn") {
			t.Errorf("expected dsn error, got %v", err)
		}
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		path := writeConfig(t, "connection:\n  driver: oracle\n  dsn: x\n")
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "driver") {
			t.Errorf("expected driver error, got %v", err)
		}
	})

	t.Run("UnknownLogLevel", func(t *testing.T) {
		path := writeConfig(t, "connection:\n  dsn: x\nlog:\n  level: debug\n")
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "log level") {
			t.Errorf("expected log level error, got %v", err)
		}
	})
}
