package security

import (
	"testing"

	"github.com/studevo/Studevo/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	tests := map[string]string{
		"ada@uni.edu": "a***@uni.edu",
		"a@uni.edu":   "***@uni.edu",
		"ab":          "***",
		"@uni.edu":    "***@uni.edu",
		"johnsmith":   "***",
	}
	for in, want := range tests {
		assert.Equal(t, want, MaskEmail(in), in)
	}
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	Log(Event{Type: EventLoginFailed, Email: "ada@uni.edu", Reason: "bad_password"})
	Log(Event{Type: EventLoginSuccess, Email: "ada@uni.edu"})

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "security", entries[0].LoggerName)
		assert.Equal(t, "a***@uni.edu", entries[0].ContextMap()["subject"])
		assert.Equal(t, "bad_password", entries[0].ContextMap()["reason"])
		assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	}
}
