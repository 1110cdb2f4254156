package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	log := NewNop()

	require.NotNil(t, log)
	require.IsType(t, &NopLogger{}, log)
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	log := NewNop()

	require.NotPanics(t, func() {
		log.Debug("debug", "k", "v")
		log.Info("info")
		log.Warn("warn", "odd-key-only")
		log.Error("error", "err", nil)
		log.Fatal("fatal must not exit")
	})
}
