// Package logger provides standardized logging utilities for the bindings
// generator.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Global logger instance. Nil until Init; logging before Init is a no-op,
// which keeps library consumers and tests quiet by default.
var defaultLogger *logrus.Logger

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a level name from a flag or config file.
func ParseLevel(s string) (LogLevel, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Config holds logger configuration
type Config struct {
	Level     LogLevel
	Format    string // "text" or "json"
	Output    io.Writer
	AddSource bool
	LogFile   string
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:     LevelInfo,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: false,
	}
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	output := cfg.Output
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		output = file
	}
	if output == nil {
		output = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(output)
	l.SetLevel(toLogrusLevel(cfg.Level))
	l.SetReportCaller(cfg.AddSource)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	defaultLogger = l
	return nil
}

// InitDev initializes logging for development (debug level, text format)
func InitDev() {
	_ = Init(Config{
		Level:     LevelDebug,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: true,
	})
}

// InitProd initializes logging for production (info level, json format)
func InitProd(logDir string) error {
	logPath := filepath.Join(logDir, "uniffi-bindgen-react-native.log")
	return Init(Config{
		Level:   LevelInfo,
		Format:  "json",
		LogFile: logPath,
	})
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// fields converts alternating key/value args into logrus fields.
func fields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		f[key] = args[i+1]
	}
	if len(args)%2 != 0 {
		f["extra"] = args[len(args)-1]
	}
	return f
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.WithFields(fields(args)).Debug(msg)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.WithFields(fields(args)).Info(msg)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.WithFields(fields(args)).Warn(msg)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.WithFields(fields(args)).Error(msg)
	}
}

// With returns an entry with the given attributes attached
func With(args ...any) *logrus.Entry {
	if defaultLogger != nil {
		return defaultLogger.WithFields(fields(args))
	}
	return logrus.WithFields(fields(args))
}

// WithComponent returns an entry tagged with a component name
func WithComponent(name string) *logrus.Entry {
	return With("component", name)
}

// Generator-specific logging helpers

// LogPhase logs the start of a generation phase
func LogPhase(phase string) {
	Info("Starting generation phase", "phase", phase)
}

// LogPhaseComplete logs the completion of a generation phase
func LogPhaseComplete(phase string) {
	Info("Completed generation phase", "phase", phase)
}

// LogModelLoad logs interface model loading
func LogModelLoad(module string, declCount int) {
	Debug("Interface model loaded", "module", module, "declarations", declCount)
}

// LogTypeResolution logs type oracle activity
func LogTypeResolution(module string, canonicalCount int) {
	Debug("Type resolution complete", "module", module, "canonical_names", canonicalCount)
}

// LogGeneration logs bindings plan generation
func LogGeneration(target string, module string, helperCount int) {
	Debug("Bindings plan complete",
		"target", target,
		"module", module,
		"helpers", helperCount)
}

// LogCollision logs a canonical name collision
func LogCollision(name string) {
	Error("Canonical name collision", "name", name)
}

// LogGeneratorStart logs generator startup
func LogGeneratorStart(args []string) {
	Info("uniffi-bindgen-react-native starting", "args", args)
}

// LogGeneratorComplete logs generator completion
func LogGeneratorComplete(success bool, duration string) {
	if success {
		Info("Generation successful", "duration", duration)
	} else {
		Error("Generation failed", "duration", duration)
	}
}

// LogFileProcessing logs file processing start
func LogFileProcessing(file string) {
	Info("Processing file", "file", file)
}
