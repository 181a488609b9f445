package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/rawbytedev/rmcodec/internal/config"
)

func TestSetupLoggerWritesJSONToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "rmcodec.log")
	log, err := SetupLogger(config.LogConfig{Level: "warning", Format: "json", Outputs: []string{out}})
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log.Warn("store grew")
	_ = log.Sync()
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"store grew"`)
}

func TestSetupLoggerRotation(t *testing.T) {
	name := filepath.Join(t.TempDir(), "rotated.log")
	c := config.Default().Log
	c.Level = "debug"
	c.Outputs = []string{"file"}
	c.Rotation.Enable = true
	c.Rotation.Filename = name

	log, err := SetupLogger(c)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))
	log.Info("rotating sink")
	_ = log.Sync()
	_, err = os.Stat(name)
	require.NoError(t, err)
}

func TestSetupLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := SetupLogger(config.LogConfig{Level: "loud", Outputs: []string{"stderr"}})
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
