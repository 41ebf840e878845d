// Package logging provides structured logging using Go's standard library log/slog.
// Logs are written as JSON. The level and source settings can be read from a
// configuration tree with LoadConfig, and the resulting LoggerConfig is
// supplied to the Fx container by the application.
package logging
