package main

import (
	"github.com/atlanticdynamic/urlbridge/internal/logging"
)

// SetupLogger configures the default logger based on the provided format and log level
func SetupLogger(format, logLevel string) {
	logging.SetupLogger(format, logLevel)
}
