// Package logging provides structured logging for rigdesc.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the CLI and the API server.
//
// # Features
//
//   - JSON output for production (machine-parsable)
//   - Text output for development (human-readable)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig in rigdesc.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// The write, validate and token commands always log to stderr, since their
// result is printed on stdout.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("instrument published", "instrument_id", id)
//	logger.Error("archiving failed", "error", err)
//
// # Security
//
// Never log signing secrets or service tokens. Log the token subject
// instead.
package logging
