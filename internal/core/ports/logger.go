// Package ports defines the core interfaces for the application.
package ports

import "io"

// Logger defines the interface for application logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, rendering wrapped causes hierarchically.
	Error(err error)

	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)
}
