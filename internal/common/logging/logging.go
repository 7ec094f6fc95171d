// Package logging builds the logrus logger shared by the bot's components.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds configuration for the logger
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error)
	Level string

	// Format is either "text" or "json"
	Format string

	// Output defaults to stdout
	Output io.Writer
}

// New creates a logger from the configuration. An unknown level falls back to info.
func New(cfg *Config) *logrus.Logger {
	logger := logrus.New()

	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Output != nil {
		logger.SetOutput(cfg.Output)
	} else {
		logger.SetOutput(os.Stdout)
	}

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}

// OrDefault returns logger, or the logrus standard logger when nil
func OrDefault(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}
