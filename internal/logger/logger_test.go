package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/kriuke-snack/internal/config"
	"go.uber.org/zap"
)

func TestNew_Level(t *testing.T) {
	l, err := New(config.LoggerConfig{Level: "warn", Encoding: "json"}, "production")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "loud"}, "dev")
	assert.Error(t, err)
}
