package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger returns a stderr logger at Info, or Debug when debug is set
func SetupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
