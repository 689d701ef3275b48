package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
		want   zapcore.Level
	}{
		{name: "json info", level: "info", format: "json", want: zapcore.InfoLevel},
		{name: "text debug", level: "debug", format: "text", want: zapcore.DebugLevel},
		{name: "bad level falls back to info", level: "loud", format: "json", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, InitLogger(tt.level, tt.format))
			l := GetLogger()
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
			}
		})
	}
}

func TestWithComponent(t *testing.T) {
	require.NoError(t, InitLogger("info", "json"))
	assert.NotNil(t, WithComponent("test"))
}
