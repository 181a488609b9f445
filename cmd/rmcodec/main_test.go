package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestDemoInspectDecode(t *testing.T) {
	t.Setenv("RMCODEC_CONFIG", "")
	t.Setenv("RMCODEC_LOG_LEVEL", "error")
	snap := filepath.Join(t.TempDir(), "demo.rmc")

	require.NoError(t, run(t, "demo", "--out", snap))
	require.NoError(t, run(t, "inspect", snap))
	require.NoError(t, run(t, "inspect", "--fields", snap))
	require.NoError(t, run(t, "decode", snap))
	require.NoError(t, run(t, "decode", "--kind", "DvIdentifier", "--last", snap))

	require.Error(t, run(t, "decode", "--kind", "NoSuchKind", snap))
	require.Error(t, run(t, "decode", "--kind", "Contribution", "--last", snap))
	require.Error(t, run(t, "inspect", filepath.Join(t.TempDir(), "missing.rmc")))
}

func TestRoundtripWithMetrics(t *testing.T) {
	t.Setenv("RMCODEC_CONFIG", "")
	t.Setenv("RMCODEC_LOG_LEVEL", "error")
	t.Setenv("RMCODEC_METRICS_ENABLE", "true")

	require.NoError(t, run(t, "roundtrip", "-p", "3", "-n", "2"))
	require.Error(t, run(t, "roundtrip", "-p", "0"))
}
