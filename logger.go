package slist

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// ConfigureLogging sets up the global default logger with a TextHandler
// and configures the log level based on the SLIST_LOG_LEVEL environment variable.
// It defaults to Info level if not specified.
//
// The list itself only emits Debug records (rejected arguments, no-op removals),
// so applications call this at startup and set SLIST_LOG_LEVEL=DEBUG to see them.
func ConfigureLogging() {
	logLevel.Set(slog.LevelInfo)

	switch os.Getenv("SLIST_LOG_LEVEL") {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLogLevel sets the logging level for the logger configured by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
