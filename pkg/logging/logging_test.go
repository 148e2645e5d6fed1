package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()

	level := zerolog.GlobalLevel()
	logger := log.Logger
	t.Cleanup(func() {
		closeLogFile()
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)
			logPath := filepath.Join(t.TempDir(), "gcroots", "gcroots.log")

			SetupLoggerWithWriter(tt.verbosity, logPath, &bytes.Buffer{})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetupLogger_WritesToFileAndConsole(t *testing.T) {
	restoreGlobals(t)
	logPath := filepath.Join(t.TempDir(), "gcroots.log")
	var console bytes.Buffer

	SetupLoggerWithWriter(0, logPath, &console)
	l := GetLogger("roots")
	l.Warn().Msg("root replaced")

	assert.Contains(t, console.String(), "root replaced")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"roots"`)
	assert.Contains(t, string(data), `"message":"root replaced"`)
}

func TestSetupLogger_ReplacesPreviousFile(t *testing.T) {
	restoreGlobals(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	SetupLoggerWithWriter(0, first, &bytes.Buffer{})
	previous := activeLogFile
	require.NotNil(t, previous)

	SetupLoggerWithWriter(0, second, &bytes.Buffer{})
	assert.ErrorIs(t, previous.Close(), os.ErrClosed, "earlier log file stays open")
	require.NotNil(t, activeLogFile)
	assert.Equal(t, second, activeLogFile.Name())

	log.Warn().Msg("after switch")
	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after switch")

	SetupLoggerWithWriter(0, "", &bytes.Buffer{})
	assert.Nil(t, activeLogFile)
}

func TestSetupLogger_NoFile(t *testing.T) {
	restoreGlobals(t)
	var console bytes.Buffer

	SetupLoggerWithWriter(1, "", &console)
	log.Info().Msg("console only")

	assert.Contains(t, console.String(), "console only")
}

func TestSetupLogger_UnwritableFileFallsBack(t *testing.T) {
	restoreGlobals(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	var console bytes.Buffer

	// parent of the log file is a regular file, so it cannot be created
	SetupLoggerWithWriter(0, filepath.Join(blocker, "gcroots.log"), &console)

	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestLogOperationStart(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "create-roots")
	done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Operation started")
	assert.Contains(t, lines[1], "Operation completed")
	assert.Contains(t, lines[1], `"duration"`)
}
