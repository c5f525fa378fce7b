package logging

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger instance.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.RFC3339,
	Level:           log.InfoLevel,
})

// Init adjusts the log level from the environment name. Development runs
// keep debug output; anything else stays at info.
func Init(environment string) {
	if environment == "development" {
		Logger.SetLevel(log.DebugLevel)
	}
	Logger.Info("logger initialized", "environment", environment)
}
