package main

import (
	"flag"
	"io"
	"os"

	"github.com/labstack/gommon/log"

	"github.com/radhian/price-upload-system/config"
	"github.com/radhian/price-upload-system/infra/logger"
)

// dbFlags are the database connection options. Only flags set
// on the command line override the configuration file.
type dbFlags struct {
	driver   string
	host     string
	port     int
	name     string
	user     string
	password string
	debug    bool
}

func (d *dbFlags) register(f *flag.FlagSet) {
	f.StringVar(&d.driver, "dbdriver", "QMYSQL", "database type <QMYSQL|QPSQL|QSQLITE>")
	f.StringVar(&d.host, "dbip", "localhost", "database host address")
	f.IntVar(&d.port, "dbport", 3306, "database port")
	f.StringVar(&d.name, "dbname", "gnucash", "database name, or file path for QSQLITE")
	f.StringVar(&d.user, "dbuser", "GNUCASH", "database username")
	f.StringVar(&d.password, "dbpassword", "GNUCASH", "database password")
	f.BoolVar(&d.debug, "debug", false, "Display debug information.")
}

// apply copies the explicitly set flags onto cfg.
func (d *dbFlags) apply(cfg *config.Config, f *flag.FlagSet) {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "dbdriver":
			cfg.Database.Driver = d.driver
		case "dbip":
			cfg.Database.Host = d.host
		case "dbport":
			cfg.Database.Port = d.port
		case "dbname":
			cfg.Database.Name = d.name
			cfg.Database.Path = d.name
		case "dbuser":
			cfg.Database.User = d.user
		case "dbpassword":
			cfg.Database.Password = d.password
		case "debug":
			if d.debug {
				cfg.Log.Level = "debug"
			}
		}
	})
}

// loadConfig reads the config file and applies the command line on top.
func loadConfig(d *dbFlags, f *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	d.apply(cfg, f)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) (*log.Logger, error) {
	if out == nil {
		out = os.Stdout
	}
	return logger.New("price-upload", cfg.Log.Level, out)
}
