package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/rgehrsitz/ficalc/internal/config"
)

// newLogger builds the process logger from settings. *log.Logger already has the
// Debugf/Infof/Warnf/Errorf methods calculation.Logger asks for.
func newLogger(w io.Writer, s config.Settings) *log.Logger {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if s.Debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "ficalc",
		Level:           level,
		ReportTimestamp: false,
	})
	if s.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	if err != nil {
		logger.Warnf("unknown log level %q, using info", s.LogLevel)
	}
	return logger
}
