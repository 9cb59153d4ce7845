package db

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/radhian/price-upload-system/config"
)

func TestDialect(t *testing.T) {
	tests := map[string]string{
		"QMYSQL":     "mysql",
		"mysql":      "mysql",
		"QPSQL":      "postgres",
		"postgresql": "postgres",
		"QSQLITE":    "sqlite3",
		" sqlite ":   "sqlite3",
	}
	for in, want := range tests {
		got, err := Dialect(in)
		if err != nil {
			t.Fatalf("Dialect(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("Dialect(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := Dialect("QODBC"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestDSN(t *testing.T) {
	cfg := config.Database{Driver: "QMYSQL", Host: "localhost", Port: 3306, Name: "gnucash", User: "GNUCASH", Password: "pw"}
	dialect, dsn, err := DSN(cfg)
	if err != nil {
		t.Fatalf("DSN: %v", err)
	}
	if dialect != "mysql" || dsn != "GNUCASH:pw@tcp(localhost:3306)/gnucash?charset=utf8mb4" {
		t.Errorf("mysql DSN = %s %s", dialect, dsn)
	}

	cfg.Driver, cfg.Port, cfg.SSLMode = "QPSQL", 5432, "disable"
	_, dsn, err = DSN(cfg)
	if err != nil {
		t.Fatalf("DSN: %v", err)
	}
	for _, part := range []string{"host=localhost", "port=5432", "dbname=gnucash", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("postgres DSN %q lacks %q", dsn, part)
		}
	}

	cfg.Driver = "QSQLITE"
	if _, _, err := DSN(cfg); err == nil {
		t.Error("expected error for sqlite without path")
	}
}

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnucash.sqlite")
	conn, err := Open(config.Database{Driver: "QSQLITE", Path: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	if got := conn.DB().Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}
}
