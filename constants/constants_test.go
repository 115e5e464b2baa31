package constants

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("OUT_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	assert.Equal("./out", GetOutDir())
	assert.Equal("8080", GetPort())
	assert.Equal(slog.LevelInfo, GetLogLevel())

	t.Setenv("OUT_PATH", "/tmp/songs")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	assert.Equal("/tmp/songs", GetOutDir())
	assert.Equal("9000", GetPort())
	assert.Equal(slog.LevelDebug, GetLogLevel())
}
