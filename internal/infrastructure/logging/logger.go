package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nerrad567/smarthome-core/internal/infrastructure/config"
)

// Component names attached to loggers handed to subsystems.
const (
	ComponentController = "controller"
	ComponentMQTT       = "mqtt"
	ComponentConsole    = "console"
)

// Logger is the structured logger shared by every subsystem.
//
// All methods are safe for concurrent use; the MQTT client logs from paho's
// goroutines while the console runs on the main one.
type Logger struct {
	*slog.Logger
}

// New creates a Logger from the logging configuration.
//
// Output is "stderr" (default), "stdout" or "none". Logs default to stderr
// so they do not interleave with the console menu on stdout; "none" silences
// them entirely.
func New(cfg config.LoggingConfig, version string) *Logger {
	return NewWriter(outputFor(cfg.Output), cfg, version)
}

// NewWriter creates a Logger that writes to output, ignoring cfg.Output.
func NewWriter(output io.Writer, cfg config.LoggingConfig, version string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "smarthome"),
		slog.String("version", version),
	})

	return &Logger{Logger: slog.New(handler)}
}

func outputFor(name string) io.Writer {
	switch strings.ToLower(name) {
	case "stdout":
		return os.Stdout
	case "none":
		return io.Discard
	default:
		return os.Stderr
	}
}

// parseLevel converts a configured level name to slog.Level.
// Unknown names fall back to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a new Logger with additional default attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Component returns a child logger tagged with component=name.
//
//	ctrlLog := log.Component(logging.ComponentController)
//	ctrlLog.Info("device added", "id", 3) // component=controller id=3
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// Home returns a child logger tagged with the installation name, so logs
// from several homes sharing one collector can be told apart.
func (l *Logger) Home(name string) *Logger {
	if name == "" {
		return l
	}
	return l.With("home", name)
}

// Default creates the logger used before configuration is loaded: text on
// stderr at info level.
func Default() *Logger {
	return New(config.LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}, "dev")
}
