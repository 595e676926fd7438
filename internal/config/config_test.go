package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, coreSettings{Debug: true}.LogLevel())
	assert.Equal(t, slog.LevelInfo, coreSettings{}.LogLevel())
}
