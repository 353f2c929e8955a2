package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// initLogging configures the package-wide logrus logger
func initLogging(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// debugLog prints debug messages only when debug mode is enabled
func debugLog(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
