package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/log"
)

// ParseLevel maps a config level name to a gommon log level.
func ParseLevel(level string) (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return log.INFO, fmt.Errorf("unknown log level %q", level)
}

// New returns a gommon logger writing to out at the given level.
func New(prefix, level string, out io.Writer) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := log.New(prefix)
	l.SetLevel(lvl)
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	if out != nil {
		l.SetOutput(out)
	}
	return l, nil
}
