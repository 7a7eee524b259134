// Package logging provides structured logging for the smart home core.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the application.
//
// # Features
//
//   - JSON or text output
//   - Default fields (service, version) on all log entries
//   - Per-subsystem child loggers tagged with component and home
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stderr"   # stdout, stderr, none
//
// Logs default to stderr so they never interleave with the console menu on
// stdout.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0").Home(cfg.Home.Name)
//	ctrl.SetLogger(logger.Component(logging.ComponentController))
//	logger.Error("failed to connect", "error", err)
package logging
