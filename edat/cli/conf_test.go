package cli

import (
	"testing"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFlagsTraceLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.cli")
	defer teardown()
	//
	cmd := &cobra.Command{Use: "edat"}
	addGlobalFlags(cmd)
	require.NoError(t, cmd.PersistentFlags().Parse([]string{
		"--tracelevel", "Debug", "--logfile", "/tmp/edat.log",
	}))
	konf := koanfadapter.New(koanf.New("."), "", nil)
	require.NoError(t, mergeFlags(konf, cmd))
	assert.Equal(t, "Debug", konf.GetString("trace.root"))
	for _, key := range tracerKeys {
		assert.Equal(t, "Debug", konf.GetString("trace."+key), "tracer %s", key)
	}
	assert.Equal(t, "file:///tmp/edat.log", konf.GetString("tracing.destination"))
}

func TestMergeFlagsDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.cli")
	defer teardown()
	//
	cmd := &cobra.Command{Use: "edat"}
	addGlobalFlags(cmd)
	require.NoError(t, cmd.PersistentFlags().Parse(nil))
	konf := koanfadapter.New(koanf.New("."), "", nil)
	require.NoError(t, mergeFlags(konf, cmd))
	assert.False(t, konf.IsSet("trace.root"))
	assert.False(t, konf.IsSet("tracing.destination"))
	assert.Equal(t, "stderr", konf.GetString("logfile"))
}
