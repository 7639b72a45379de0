package dronelbl

import (
	"io"

	"github.com/sirupsen/logrus"
)

// log is the package logger. Commands replace it with SetLogger.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Passing nil mutes logging.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		muted := logrus.New()
		muted.SetOutput(io.Discard)
		log = muted
		return
	}
	log = l
}
