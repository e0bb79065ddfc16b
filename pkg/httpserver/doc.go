// Package httpserver wraps net/http.Server with graceful shutdown,
// env-based configuration, and structured startup/shutdown logging.
package httpserver
