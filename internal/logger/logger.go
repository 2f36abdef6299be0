// Package logger builds the application logger.
//
// The terminal belongs to the UI, so logs only ever go to a rotated file.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSize = 10
	maxBack = 5
	maxAge  = 30
)

// NewLogger returns a zerolog logger writing to filePath with rotation.
// An empty filePath disables logging.
func NewLogger(filePath, serviceName string) zerolog.Logger {
	return newLogger(rotatingWriter(filePath), serviceName)
}

func newLogger(w io.Writer, serviceName string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(w).With().
		Timestamp().
		Str("service", serviceName).
		Logger().
		Level(zerolog.DebugLevel)
}

// rotatingWriter returns a lumberjack writer for filePath, or io.Discard
// when no path is configured
func rotatingWriter(filePath string) io.Writer {
	if filePath == "" {
		return io.Discard
	}
	return &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize, // megabytes before rotation
		MaxBackups: maxBack,
		MaxAge:     maxAge, // days
		Compress:   true,
	}
}

// RotatingWriter is exported for other file sinks (HTTP traces)
func RotatingWriter(filePath string) io.Writer {
	return rotatingWriter(filePath)
}
