// Package logging wraps a process-wide structured logger. Library
// packages log sparingly; the tools set the level from their flags.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

func get() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "forge",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// SetVerbose switches the process logger to debug level.
func SetVerbose(on bool) {
	if on {
		get().SetLevel(log.DebugLevel)
	} else {
		get().SetLevel(log.InfoLevel)
	}
}

// Debug logs at debug level with key-value pairs.
func Debug(msg string, kv ...interface{}) { get().Debug(msg, kv...) }

// Info logs at info level with key-value pairs.
func Info(msg string, kv ...interface{}) { get().Info(msg, kv...) }

// Warn logs at warn level with key-value pairs.
func Warn(msg string, kv ...interface{}) { get().Warn(msg, kv...) }

// Error logs at error level with key-value pairs.
func Error(msg string, kv ...interface{}) { get().Error(msg, kv...) }

// Fatal logs at error level and exits.
func Fatal(msg string, kv ...interface{}) { get().Fatal(msg, kv...) }
