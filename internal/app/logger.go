package app

import (
	"os"

	"github.com/guttosm/loadplan-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger from LOG_LEVEL and
// LOG_PRETTY. Unset or unknown levels fall back to info.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
