// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. It writes to stderr until Init is called.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Config controls level and output format.
type Config struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // json or pretty
}

// Init replaces the global logger according to config. Unknown levels fall
// back to info.
func Init(config Config) {
	InitWithWriter(config, os.Stderr)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(config Config, out io.Writer) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}

	output := out
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = Logger
}

// WithComponent returns a child logger tagged with a component name.
func WithComponent(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	return Logger.Warn()
}
