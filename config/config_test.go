package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/radhian/price-upload-system/entity"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != "mysql" || cfg.Database.Host != "localhost" || cfg.Database.Port != 3306 {
		t.Errorf("database defaults = %+v", cfg.Database)
	}
	if cfg.Database.Name != "gnucash" || cfg.Database.User != "GNUCASH" || cfg.Database.Password != "GNUCASH" {
		t.Errorf("database defaults = %+v", cfg.Database)
	}
	if cfg.Upload.Currency != "AUD" {
		t.Errorf("currency = %q, want AUD", cfg.Upload.Currency)
	}
	if cfg.Upload.Dir != "uploads" {
		t.Errorf("upload dir = %q, want uploads", cfg.Upload.Dir)
	}
	opts := cfg.ReadOptions()
	if !opts.Header || opts.StrictDates {
		t.Errorf("read options = %+v, want header and lenient dates", opts)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  driver: postgres
  host: db.internal
  port: 5432
  name: books
upload:
  currency: USD
  header: false
  strict_dates: true
  dir: /srv/prices
server:
  port: "9090"
schedules:
  - name: bhp
    cron: "0 0 18 * * 1-5"
    file: /data/BHP.AX.csv
    share: BHP
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("UPLOAD_DIR", "/srv/incoming")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Port != 5432 || cfg.Database.Name != "books" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Database.Host != "override.internal" || cfg.Database.Password != "secret" {
		t.Errorf("env overrides not applied: %+v", cfg.Database)
	}
	if cfg.Database.User != "GNUCASH" {
		t.Errorf("user default = %q", cfg.Database.User)
	}
	if opts := cfg.ReadOptions(); opts.Header || !opts.StrictDates {
		t.Errorf("read options = %+v", opts)
	}
	if cfg.Upload.Dir != "/srv/incoming" {
		t.Errorf("upload dir = %q, want the UPLOAD_DIR override", cfg.Upload.Dir)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("server port = %q", cfg.Server.Port)
	}
	if len(cfg.Schedules) != 1 || cfg.Schedules[0].Currency != "USD" {
		t.Fatalf("schedules = %+v", cfg.Schedules)
	}
	if !cfg.Schedules[0].Options().Header {
		t.Error("schedule header should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database: [oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}

	t.Setenv("DB_PORT", "not-a-port")
	if _, err := Load(""); err == nil {
		t.Error("expected DB_PORT error")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Database.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected port range error")
	}

	cfg.Database.Port = 3306
	cfg.Schedules = append(cfg.Schedules, entity.ScheduledUpload{Name: "broken"})
	if err := cfg.Validate(); err == nil {
		t.Error("expected schedule error")
	}
}
