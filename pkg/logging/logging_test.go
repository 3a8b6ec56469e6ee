package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateState(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLevelFor(t *testing.T) {
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
		{"negative is warn", -1, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, LevelFor(tt.verbosity))
		})
	}
}

func TestSetup_ConsoleAndLogFile(t *testing.T) {
	state := isolateState(t)
	var console bytes.Buffer

	Setup(1, &console)
	logger := GetLogger("sort")
	logger.Info().Str("source", "/photos/a.jpg").Msg("Sorted file")

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Contains(t, console.String(), "Sorted file")
	assert.NotContains(t, console.String(), "\x1b[", "console output to a buffer is not colored")

	content, err := os.ReadFile(filepath.Join(state, "photosort", "photosort.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"component":"sort"`)
	assert.Contains(t, string(content), `"source":"/photos/a.jpg"`)
}

func TestSetup_LevelFiltersConsole(t *testing.T) {
	isolateState(t)
	var console bytes.Buffer

	Setup(0, &console)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
}

func TestSetup_ReopensLogFile(t *testing.T) {
	state := isolateState(t)
	var console bytes.Buffer

	Setup(1, &console)
	log.Info().Msg("first")
	Setup(1, &console)
	log.Info().Msg("second")

	content, err := os.ReadFile(filepath.Join(state, "photosort", "photosort.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first")
	assert.Contains(t, string(content), "second")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("watch")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"watch"`)
}
