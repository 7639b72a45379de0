// Package cli holds the argument parsing and setup shared by the commands.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/akamensky/argparse"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sensorable/dronelbl"
	"github.com/sensorable/dronelbl/internal/logging"
)

// Environment variables that provide flag defaults. They may also be set in a .env file in the
// working directory.
const (
	EnvDatasetDir = "VISDRONE_DIR"
	EnvDetector   = "YOLO_BIN"
)

// LoadEnv loads .env from the working directory, if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}
}

// Getenv returns the value of the environment variable key, or def if it is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Common holds the flags every command accepts.
type Common struct {
	verbose *bool
	logFile *string
}

// AddCommon registers the common flags with p.
func AddCommon(p *argparse.Parser) *Common {
	return &Common{
		verbose: p.Flag("v", "verbose", &argparse.Options{Help: "Log debug messages"}),
		logFile: p.String("", "log-file", &argparse.Options{Help: "Also write the log to this file (rotated)"}),
	}
}

// Logger creates the logger configured by the common flags and installs it as the library
// logger.
func (c *Common) Logger() *logrus.Logger {
	logger := logging.New(logging.Options{Verbose: *c.verbose, File: *c.logFile})
	dronelbl.SetLogger(logger)
	return logger
}

// Parse parses args with p. On failure it prints the usage and exits.
func Parse(p *argparse.Parser, args []string) {
	if err := p.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, p.Usage(err))
		os.Exit(1)
	}
}
