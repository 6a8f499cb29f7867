package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default keeps info for the log file", 0, zerolog.InfoLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	day := time.Date(2024, 1, 2, 15, 30, 45, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logDir := t.TempDir()
			var console bytes.Buffer

			SetupLoggerWithOptions(Options{
				Verbosity: tt.verbosity,
				LogDir:    logDir,
				Console:   &console,
				Now:       func() time.Time { return day },
			})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(logDir, "organize_2024-01-02.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "daily log file should be created")
		})
	}
}

func TestSetupLogger_WritesToFile(t *testing.T) {
	logDir := t.TempDir()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	SetupLoggerWithOptions(Options{
		Verbosity: 1,
		LogDir:    logDir,
		Console:   &bytes.Buffer{},
		Now:       func() time.Time { return day },
	})
	logger := GetLogger("organize")
	logger.Info().Str("source", "/tmp/a.txt").Msg("Moved file")

	data, err := os.ReadFile(filepath.Join(logDir, "organize_2024-03-04.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Moved file")
	assert.Contains(t, string(data), `"component":"organize"`)
}

func TestSetupLogger_ConsoleQuietFileComplete(t *testing.T) {
	logDir := t.TempDir()
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	var console bytes.Buffer

	SetupLoggerWithOptions(Options{
		Verbosity: 0,
		LogDir:    logDir,
		Console:   &console,
		Now:       func() time.Time { return day },
	})
	logger := GetLogger("report")
	logger.Info().Msg("Moved file")
	logger.Warn().Msg("Something odd")

	assert.NotContains(t, console.String(), "Moved file")
	assert.Contains(t, console.String(), "Something odd")

	data, err := os.ReadFile(filepath.Join(logDir, "organize_2024-03-05.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Moved file")
	assert.Contains(t, string(data), "Something odd")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, levelFor(0))
	assert.Equal(t, zerolog.InfoLevel, levelFor(1))
	assert.Equal(t, zerolog.TraceLevel, levelFor(9))
}

func TestGetLogFilePath(t *testing.T) {
	day := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)

	got := GetLogFilePath("/custom/state", day)
	assert.Equal(t, "/custom/state/organize_2025-12-31.log", filepath.ToSlash(got))

	t.Setenv("SORTIE_STATE_DIR", "/from/env")
	got = GetLogFilePath("", day)
	assert.Equal(t, "/from/env/organize_2025-12-31.log", filepath.ToSlash(got))
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"test-component"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := WithFields(map[string]interface{}{"runId": "abc", "dryRun": true})
	logger.Info().Msg("fields")

	assert.Contains(t, buf.String(), `"runId":"abc"`)
	assert.Contains(t, buf.String(), `"dryRun":true`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "walk")
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"operation":"walk"`)
}
