package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"    //mysql
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	_ "github.com/jinzhu/gorm/dialects/sqlite"   //sqlite

	"github.com/radhian/price-upload-system/config"
)

// Dialect maps a configured driver name, including the names used by the
// Qt SQL drivers (QMYSQL, QPSQL, QSQLITE), to a gorm dialect.
func Dialect(driver string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "mysql", "qmysql", "mariadb":
		return "mysql", nil
	case "postgres", "postgresql", "qpsql":
		return "postgres", nil
	case "sqlite", "sqlite3", "qsqlite":
		return "sqlite3", nil
	}
	return "", fmt.Errorf("unsupported database driver %q", driver)
}

// DSN builds the connection string for cfg.
func DSN(cfg config.Database) (string, string, error) {
	dialect, err := Dialect(cfg.Driver)
	if err != nil {
		return "", "", err
	}

	switch dialect {
	case "mysql":
		return dialect, fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name), nil
	case "postgres":
		return dialect, fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s password=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.SSLMode, cfg.Password), nil
	default:
		if cfg.Path == "" {
			return "", "", errors.New("sqlite database path is required")
		}
		return dialect, cfg.Path, nil
	}
}

// Open connects to the GnuCash database. The pool is capped at one
// connection: a run owns a single connection for its whole duration.
func Open(cfg config.Database) (*gorm.DB, error) {
	dialect, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to database %s: %w", cfg.Name, err)
	}
	conn.DB().SetMaxOpenConns(1)

	return conn, nil
}
