package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	globalLogger *Logger
	mu           sync.RWMutex
)

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		defaultLevel := "info"
		if os.Getenv("DEBUG") == "true" {
			defaultLevel = "debug"
		} else if os.Getenv("LOG_LEVEL") != "" {
			defaultLevel = os.Getenv("LOG_LEVEL")
		}

		globalLogger = New(Config{
			Level:      defaultLevel,
			Format:     "console",
			Output:     "stdout",
			TimeFormat: "15:04:05",
		})
	}
	return globalLogger
}

// SetLogger sets the global logger instance. zerolog's package logger
// follows it so library code logging through zerolog/log lands in the
// same sinks.
func SetLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
	if logger != nil {
		log.Logger = logger.logger
	}
}
