// Package logger builds configured slog.Logger instances and provides
// shared attribute helpers so log keys stay consistent across the service.
package logger
