// Package logging configures the logrus logger shared by the commands.
package logging

import (
	"io"
	"os"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure New.
type Options struct {
	Verbose bool   // Log at debug level.
	File    string // Also log to this file, rotated. Empty disables file logging.
	NoColor bool
}

// New returns a logger writing to stderr and, if configured, a rotated log file.
func New(opts Options) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.SetFormatter(&formatter.Formatter{
		NoColors:        opts.NoColor || opts.File != "",
		TimestampFormat: "2006-01-02 15:04:05",
		HideKeys:        false,
		FieldsOrder:     []string{"run_id", "split", "file", "status"},
	})

	writers := []io.Writer{os.Stderr}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			LocalTime:  true,
			Compress:   true,
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 3,
		})
	}
	logger.SetOutput(io.MultiWriter(writers...))

	return logger
}
