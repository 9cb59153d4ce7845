package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/entity"
)

type Database struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	// Path is the database file when Driver is sqlite.
	Path string `yaml:"path"`
}

type Upload struct {
	Currency    string `yaml:"currency"`
	Header      *bool  `yaml:"header"`
	StrictDates bool   `yaml:"strict_dates"`
	// Dir is the only directory the HTTP upload endpoint reads files from.
	Dir string `yaml:"dir"`
}

// Config holds the application configuration.
type Config struct {
	Database Database `yaml:"database"`
	Upload   Upload   `yaml:"upload"`
	Server   struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Schedules []entity.ScheduledUpload `yaml:"schedules"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		c.Database.Port = p
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		c.Database.SSLMode = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		c.Upload.Dir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = consts.DefaultDBDriver
	}
	if c.Database.Host == "" {
		c.Database.Host = consts.DefaultDBHost
	}
	if c.Database.Port == 0 {
		c.Database.Port = consts.DefaultDBPort
	}
	if c.Database.Name == "" {
		c.Database.Name = consts.DefaultDBName
	}
	if c.Database.User == "" {
		c.Database.User = consts.DefaultDBUser
	}
	if c.Database.Password == "" {
		c.Database.Password = consts.DefaultDBPassword
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = consts.DefaultDBSSLMode
	}
	if c.Upload.Currency == "" {
		c.Upload.Currency = consts.DefaultCurrency
	}
	if c.Upload.Header == nil {
		header := true
		c.Upload.Header = &header
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = consts.DefaultUploadDir
	}
	if c.Server.Port == "" {
		c.Server.Port = consts.DefaultServerPort
	}
	if c.Log.Level == "" {
		c.Log.Level = consts.DefaultLogLevel
	}
	for i := range c.Schedules {
		if c.Schedules[i].Currency == "" {
			c.Schedules[i].Currency = c.Upload.Currency
		}
	}
}

// ReadOptions returns the upload options configured for file reading.
func (c *Config) ReadOptions() entity.ReadOptions {
	return entity.ReadOptions{Header: *c.Upload.Header, StrictDates: c.Upload.StrictDates}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Database.Driver == "" {
		return errors.New("database.driver is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("database.port %d out of range", c.Database.Port)
	}
	if c.Database.Name == "" {
		return errors.New("database.name is required")
	}
	for _, s := range c.Schedules {
		if s.Cron == "" || s.File == "" || s.Share == "" {
			return fmt.Errorf("schedule %q: cron, file and share are required", s.Name)
		}
	}
	return nil
}
