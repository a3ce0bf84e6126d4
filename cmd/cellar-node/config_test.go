package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	v := initViper("")

	require.Equal(t, "127.0.0.1:8080", v.GetString(cfgNodeAddress))
	require.Equal(t, 30*time.Second, v.GetDuration(cfgNodeShutdownTTL))

	require.Equal(t, "data", v.GetString(cfgStoragePath))
	require.EqualValues(t, 0o700, v.GetInt(cfgStoragePerm))
	require.False(t, v.GetBool(cfgStorageReadOnly))

	require.Equal(t, "info", v.GetString(cfgLogLevel))
	require.Equal(t, "console", v.GetString(cfgLogFormat))
	require.Equal(t, "fatal", v.GetString(cfgLogTrace))

	require.False(t, v.GetBool(cfgProfilerEnable))
	require.Equal(t, ":6060", v.GetString(cfgProfilerAddr))
	require.Equal(t, 30*time.Second, v.GetDuration(cfgProfilerTTL))

	require.False(t, v.GetBool(cfgMetricsEnable))
	require.Equal(t, ":9090", v.GetString(cfgMetricsAddr))
	require.Equal(t, 30*time.Second, v.GetDuration(cfgMetricsTTL))
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("CELLAR_NODE_ADDRESS", "0.0.0.0:9000")
	t.Setenv("CELLAR_STORAGE_PATH", "/srv/cellar/data")
	t.Setenv("CELLAR_LOGGER_LEVEL", "debug")

	v := initViper("")

	require.Equal(t, "0.0.0.0:9000", v.GetString(cfgNodeAddress))
	require.Equal(t, "/srv/cellar/data", v.GetString(cfgStoragePath))
	require.Equal(t, "debug", v.GetString(cfgLogLevel))
}

func TestConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"node:\n"+
			"  address: 127.0.0.1:9999\n"+
			"storage:\n"+
			"  path: /srv/cellar/objects\n",
	), 0o600))

	v := initViper(path)

	require.Equal(t, "127.0.0.1:9999", v.GetString(cfgNodeAddress))
	require.Equal(t, "/srv/cellar/objects", v.GetString(cfgStoragePath))

	// Keys missing from the file keep their defaults.
	require.Equal(t, "info", v.GetString(cfgLogLevel))
	require.EqualValues(t, 0o700, v.GetInt(cfgStoragePerm))
}
