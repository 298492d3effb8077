package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{name: "debug", level: "debug", want: zapcore.DebugLevel},
		{name: "upper case warn", level: "WARN", want: zapcore.WarnLevel},
		{name: "error", level: "error", want: zapcore.ErrorLevel},
		{name: "unknown falls back to info", level: "verbose", want: zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestNew(t *testing.T) {
	log, err := New("debug")
	assert.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
