package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures SetupLoggerWithOptions
type Options struct {
	// Verbosity maps to a level: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int

	// LogDir holds the daily log files. Empty means the sortie state directory.
	LogDir string

	// Console receives the human readable output. Defaults to os.Stderr.
	Console io.Writer

	// Now is used to pick the daily log file. Defaults to time.Now.
	Now func() time.Time
}

// SetupLogger configures the global logger based on verbosity
// It sets up dual output to both console and a daily log file
func SetupLogger(verbosity int) {
	SetupLoggerWithOptions(Options{Verbosity: verbosity})
}

// SetupLoggerWithOptions configures the global logger. The console shows
// what the verbosity asks for; the log file always records at least info
// level so every move of a run is kept. A log file that cannot be created is
// reported on the console and otherwise ignored.
func SetupLoggerWithOptions(opts Options) {
	consoleLevel := levelFor(opts.Verbosity)
	fileLevel := consoleLevel
	if fileLevel > zerolog.InfoLevel {
		fileLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(fileLevel)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}

	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter},
			Level:  consoleLevel,
		},
	}

	logFile := GetLogFilePath(opts.LogDir, now())
	logFileHandle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: logFileHandle},
			Level:  fileLevel,
		})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	logger := log.Logger
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}

// GetLogFilePath returns the daily log file for the given day.
// An empty dir resolves to the sortie state directory.
func GetLogFilePath(dir string, day time.Time) string {
	if dir == "" {
		p, err := paths.New()
		if err != nil {
			// Fallback to current directory if we can't resolve the state dir
			dir = "."
		} else {
			dir = p.LogDir()
		}
	}
	name := paths.LogFilePrefix + day.Format(paths.LogDateFormat) + ".log"
	return filepath.Join(paths.ExpandHome(dir), name)
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogDuration logs the duration of an operation
func LogDuration(start time.Time, operation string) {
	log.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
